package depmap

import "github.com/joshuapare/tracekit/pkg/types"

// Build scans the access sequence once, in trace order, and produces
// both dependency maps.
//
// A block-granular last-writer table tracks, for every logical block,
// the most recent write covering it. Each read collects the distinct
// last-writers over its block range: that set becomes the read's
// read-centric entry, and the read's ID is added to the write-centric
// entry of every write in the set. A later write over a block replaces
// its last-writer, so reads arriving after an overwrite never attach
// to the overwritten data.
//
// Zero-length accesses cover no blocks: they claim nothing as writes
// and depend on nothing as reads.
func Build(accesses []types.Access) (readCentric, writeCentric Map) {
	readCentric = make(Map)
	writeCentric = make(Map)

	lastWriter := make(map[int64]types.AccessID)
	for _, a := range accesses {
		if a.Dir == types.DirWrite {
			for blk := a.LBA; blk < a.LBA+a.Blocks; blk++ {
				lastWriter[blk] = a.ID
			}
			continue
		}
		for blk := a.LBA; blk < a.LBA+a.Blocks; blk++ {
			w, ok := lastWriter[blk]
			if !ok {
				continue
			}
			readCentric.add(a.ID, w)
			writeCentric.add(w, a.ID)
		}
	}
	return readCentric, writeCentric
}
