package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tracekit/internal/analyze"
	"github.com/joshuapare/tracekit/internal/depmap"
	"github.com/joshuapare/tracekit/internal/report"
	"github.com/joshuapare/tracekit/pkg/types"
	"github.com/joshuapare/tracekit/trace"
)

func init() {
	rootCmd.AddCommand(newBreakdownCmd())
}

func newBreakdownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakdown <trace>",
		Short: "Classify reads and writes by dependency count",
		Long: `The breakdown command classifies every access by the number of
opposite-direction accesses it depends on: independent (none), short
(exactly one), or long (more than one). Reads are classified against
the writes that produced their data; writes against the reads that
later consumed theirs.

Example:
  tracectl breakdown device.log
  tracectl breakdown device.log --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreakdown(args)
		},
	}
	return cmd
}

func runBreakdown(args []string) error {
	tracePath := args[0]

	printVerbose("Opening trace: %s\n", tracePath)
	tr, err := trace.Open(tracePath)
	if err != nil {
		return err
	}

	readCentric, writeCentric := depmap.Build(tr.Accesses())
	reads := analyze.Classify(tr.Accesses(), readCentric, types.DirRead)
	writes := analyze.Classify(tr.Accesses(), writeCentric, types.DirWrite)

	if jsonOut {
		return printJSON(struct {
			Reads  analyze.Breakdown
			Writes analyze.Breakdown
		}{reads, writes})
	}

	printInfo("\n")
	report.RenderBreakdowns(os.Stdout, reads, writes)
	return nil
}
