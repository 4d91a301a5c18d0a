package analyze

import (
	"github.com/joshuapare/tracekit/internal/depmap"
	"github.com/joshuapare/tracekit/pkg/types"
)

// Breakdown counts accesses of one direction by how many
// opposite-direction accesses they depend on.
type Breakdown struct {
	// Independent counts accesses with no dependency at all: reads from
	// blocks nothing ever wrote, or writes nothing ever read.
	Independent int
	// Short counts accesses depending on exactly one opposite access.
	Short int
	// Long counts accesses depending on more than one opposite access,
	// i.e. spanning data produced by (or consumed through) several
	// segmented extents, not necessarily a hotspot.
	Long int
}

// Total returns the number of accesses classified.
func (b Breakdown) Total() int { return b.Independent + b.Short + b.Long }

// Classify buckets every access of direction dir by the size of its
// entry in centric. The map must be the one keyed by dir's side:
// read-centric for reads, write-centric for writes.
//
// A missing key means independent. A present key with an empty set
// should not occur; it is counted as independent rather than treated
// as an error.
func Classify(accesses []types.Access, centric depmap.Map, dir types.Direction) Breakdown {
	var b Breakdown
	for _, a := range accesses {
		if a.Dir != dir {
			continue
		}
		switch deps := centric[a.ID]; {
		case len(deps) == 0:
			b.Independent++
		case len(deps) == 1:
			b.Short++
		default:
			b.Long++
		}
	}
	return b
}
