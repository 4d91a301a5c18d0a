package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tracekit/internal/report"
	"github.com/joshuapare/tracekit/pkg/types"
)

var hotwritePageBlocks int64

func init() {
	cmd := newHotwriteCmd()
	cmd.Flags().Int64Var(&hotwritePageBlocks, "page-blocks", types.DefaultPageBlocks,
		"Page size in logical blocks")
	rootCmd.AddCommand(cmd)
}

func newHotwriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotwrite <trace>",
		Short: "Histogram of per-page read counts before overwrite",
		Long: `The hotwrite command simulates the pages of every write that was
read at least once and reports, as a histogram, how many distinct reads
each page experienced before its data was overwritten.

Example:
  tracectl hotwrite device.log
  tracectl hotwrite device.log --page-blocks 16
  tracectl hotwrite device.log --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHotwrite(args)
		},
	}
	return cmd
}

func runHotwrite(args []string) error {
	rep, err := loadAndAnalyze(args[0], hotwritePageBlocks)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(struct {
			PageBlocks int64
			HotWrite   map[int]int64
		}{rep.PageBlocks, rep.HotWrite})
	}

	printInfo("\n")
	report.RenderHotWrite(os.Stdout, rep.HotWrite)
	return nil
}
