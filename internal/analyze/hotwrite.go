package analyze

import (
	"fmt"

	"github.com/joshuapare/tracekit/internal/depmap"
	"github.com/joshuapare/tracekit/pkg/types"
)

// HotWrite simulates, for every write that was read at least once, the
// write's backing storage as a page-indexed counter array: each slot
// tallies how many distinct reads touched that page while it still held
// the write's data. The per-write arrays are folded into a single
// read-count histogram covering the whole trace.
//
// Writes absent from writeCentric were never read and contribute
// nothing. The per-write counter slice lives only for that write's
// iteration.
func HotWrite(accesses []types.Access, writeCentric depmap.Map, pageBlocks int64) (Histogram, error) {
	if pageBlocks <= 0 {
		return nil, types.CorruptError(fmt.Sprintf("non-positive page size %d", pageBlocks))
	}

	hist := make(Histogram)
	for writeID, readers := range writeCentric {
		w, err := lookup(accesses, writeID)
		if err != nil {
			return nil, err
		}
		pageStart, pageEnd := types.PageSpan(w.LBA, w.Blocks, pageBlocks)
		pageCount := pageEnd - pageStart + 1
		if pageCount <= 0 {
			return nil, types.CorruptError(fmt.Sprintf(
				"write %d spans %d pages (lba=%d blocks=%d)", writeID, pageCount, w.LBA, w.Blocks))
		}

		readCounts := make([]int, pageCount)
		for readID := range readers {
			r, err := lookup(accesses, readID)
			if err != nil {
				return nil, err
			}
			rStart, rEnd := types.PageSpan(r.LBA, r.Blocks, pageBlocks)
			// The read may start earlier and end later than the write;
			// clip to the write's span.
			overlapStart := max(pageStart, rStart)
			overlapEnd := min(pageEnd, rEnd)
			// Dependency-map membership implies overlap, so an empty
			// clipped range signals an upstream bug; skip rather than
			// corrupt the counters.
			for page := overlapStart; page <= overlapEnd; page++ {
				readCounts[page-pageStart]++
			}
		}

		for _, count := range readCounts {
			hist.observe(count)
		}
	}
	return hist, nil
}

// lookup resolves a dependency-map identifier to its access record,
// failing loudly on identifiers that do not index the sequence.
func lookup(accesses []types.Access, id types.AccessID) (types.Access, error) {
	if id < 0 || int(id) >= len(accesses) {
		return types.Access{}, types.CorruptError(fmt.Sprintf(
			"dependency map references unknown access %d (trace has %d)", id, len(accesses)))
	}
	return accesses[id], nil
}
