package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/tracekit/trace"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <trace>",
		Short: "Validate a trace log and report basic metadata",
		Long: `The info command parses a trace log and displays basic metadata:
record counts per direction, the covered block-address range, and total
blocks transferred.

Example:
  tracectl info device.log
  tracectl info device.log --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// TraceInfo summarizes a parsed trace log.
type TraceInfo struct {
	FilePath string
	FileSize int64

	TotalRecords int
	Reads        int
	Writes       int

	ReadBlocks  int64
	WriteBlocks int64

	FirstLBA int64
	LastLBA  int64 // last block touched, exclusive
}

func runInfo(args []string) error {
	tracePath := args[0]

	printVerbose("Opening trace: %s\n", tracePath)

	tr, err := trace.Open(tracePath)
	if err != nil {
		return err
	}

	info := TraceInfo{
		FilePath:     tracePath,
		FileSize:     tr.Size(),
		TotalRecords: tr.Len(),
	}
	for i, a := range tr.Accesses() {
		if a.IsRead() {
			info.Reads++
			info.ReadBlocks += a.Blocks
		} else {
			info.Writes++
			info.WriteBlocks += a.Blocks
		}
		if i == 0 || a.LBA < info.FirstLBA {
			info.FirstLBA = a.LBA
		}
		if end := a.LBA + a.Blocks; end > info.LastLBA {
			info.LastLBA = end
		}
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nTrace Information:\n")
	printInfo("  File: %s\n", tracePath)
	printInfo("  Size: %s\n", humanize.Bytes(uint64(info.FileSize)))
	printInfo("  Records: %s (%s reads, %s writes)\n",
		humanize.Comma(int64(info.TotalRecords)),
		humanize.Comma(int64(info.Reads)),
		humanize.Comma(int64(info.Writes)))
	printInfo("  Blocks read: %s\n", humanize.Comma(info.ReadBlocks))
	printInfo("  Blocks written: %s\n", humanize.Comma(info.WriteBlocks))
	if info.TotalRecords > 0 {
		printInfo("  Address range: blocks %s - %s\n",
			humanize.Comma(info.FirstLBA), humanize.Comma(info.LastLBA))
	}

	return nil
}
