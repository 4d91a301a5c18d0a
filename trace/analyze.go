package trace

import (
	"github.com/joshuapare/tracekit/internal/analyze"
	"github.com/joshuapare/tracekit/internal/depmap"
	"github.com/joshuapare/tracekit/pkg/types"
)

// Report holds the results of one full analysis run.
type Report struct {
	// PageBlocks is the page size, in logical blocks, the run used.
	PageBlocks int64

	// Reads breaks reads down by how many writes produced the data
	// they consumed; Writes breaks writes down by how many reads later
	// consumed the data they produced.
	Reads  analyze.Breakdown
	Writes analyze.Breakdown

	// HotWrite maps a per-page read count to the number of pages, over
	// all read-at-least-once writes, that saw exactly that many reads
	// before being overwritten.
	HotWrite analyze.Histogram
}

// Analyze builds both dependency maps and runs the dependency
// classifier and the hot-write analyzer over the trace. pageBlocks is
// the page size in logical blocks; a single value covers the whole
// run.
func (t *Trace) Analyze(pageBlocks int64) (*Report, error) {
	readCentric, writeCentric := depmap.Build(t.accesses)

	hist, err := analyze.HotWrite(t.accesses, writeCentric, pageBlocks)
	if err != nil {
		return nil, err
	}

	return &Report{
		PageBlocks: pageBlocks,
		Reads:      analyze.Classify(t.accesses, readCentric, types.DirRead),
		Writes:     analyze.Classify(t.accesses, writeCentric, types.DirWrite),
		HotWrite:   hist,
	}, nil
}
