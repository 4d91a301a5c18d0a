package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tracekit/internal/report"
	"github.com/joshuapare/tracekit/pkg/types"
	"github.com/joshuapare/tracekit/trace"
)

var analyzePageBlocks int64

func init() {
	cmd := newAnalyzeCmd()
	cmd.Flags().Int64Var(&analyzePageBlocks, "page-blocks", types.DefaultPageBlocks,
		"Page size in logical blocks")
	rootCmd.AddCommand(cmd)
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <trace>",
		Short: "Run the full dependency and hot-write analysis",
		Long: `The analyze command runs both analyses over a trace log: the
dependency breakdown for reads and writes, and the hot-write histogram
of per-page read counts.

Example:
  tracectl analyze device.log
  tracectl analyze device.log --page-blocks 16
  tracectl analyze device.log --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args)
		},
	}
	return cmd
}

func runAnalyze(args []string) error {
	rep, err := loadAndAnalyze(args[0], analyzePageBlocks)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(rep)
	}

	printInfo("\n")
	report.RenderBreakdowns(os.Stdout, rep.Reads, rep.Writes)
	printInfo("\n")
	report.RenderHotWrite(os.Stdout, rep.HotWrite)
	return nil
}

// loadAndAnalyze is the shared open-then-analyze path of the analysis
// commands.
func loadAndAnalyze(path string, pageBlocks int64) (*trace.Report, error) {
	printVerbose("Opening trace: %s\n", path)
	tr, err := trace.Open(path)
	if err != nil {
		return nil, err
	}
	printVerbose("Parsed %d records, analyzing with %d blocks per page\n", tr.Len(), pageBlocks)
	return tr.Analyze(pageBlocks)
}
