// Package report renders analysis results for terminal consumption.
// Rendering is presentation only: callers hand it finished breakdowns
// and histograms and it never recomputes anything.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/tracekit/internal/analyze"
)

// printer groups large counts with thousands separators.
var printer = message.NewPrinter(language.English)

// Count formats n with thousands separators.
func Count[N int | int64](n N) string {
	return printer.Sprintf("%d", int64(n))
}

// RenderBreakdowns writes the read and write dependency breakdowns as
// one table, a row per direction.
func RenderBreakdowns(w io.Writer, reads, writes analyze.Breakdown) {
	fmt.Fprintln(w, "Dependency Breakdown:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"", "Independent", "Dep Short", "Dep Long", "Total"})
	table.Append(breakdownRow("Reads", reads))
	table.Append(breakdownRow("Writes", writes))
	table.Render()
}

func breakdownRow(label string, b analyze.Breakdown) []string {
	return []string{
		label,
		Count(b.Independent),
		Count(b.Short),
		Count(b.Long),
		Count(b.Total()),
	}
}

// RenderHotWrite writes the hot-write histogram: per distinct read
// count, the number of pages that saw exactly that many reads before
// being overwritten, ascending by read count.
func RenderHotWrite(w io.Writer, hist analyze.Histogram) {
	fmt.Fprintln(w, "Hot Writes (reads per page before overwrite):")
	if len(hist) == 0 {
		fmt.Fprintln(w, "  no write in the trace was ever read")
		return
	}

	total := hist.TotalPages()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Reads", "Pages", "Share"})
	for _, count := range hist.Counts() {
		freq := hist[count]
		share := float64(freq) * 100.0 / float64(total)
		table.Append([]string{
			Count(count),
			Count(freq),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	table.Render()
	fmt.Fprintf(w, "Total pages considered: %s\n", Count(total))
}
