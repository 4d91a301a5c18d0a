// Package depmap builds the read-centric and write-centric dependency
// maps the analyzers consume. A dependency exists between a read and a
// write when the read consumes blocks while they still hold that
// write's data: the write must precede the read in trace order, their
// block ranges must overlap, and no later write may have overwritten
// the overlapping blocks before the read.
package depmap

import "github.com/joshuapare/tracekit/pkg/types"

// IDSet is a set of access identifiers. Elements are unique; iteration
// order is unspecified.
type IDSet map[types.AccessID]struct{}

// Add inserts id into the set.
func (s IDSet) Add(id types.AccessID) { s[id] = struct{}{} }

// Has reports whether id is in the set.
func (s IDSet) Has(id types.AccessID) bool {
	_, ok := s[id]
	return ok
}

// Map associates an access with the set of opposite-direction accesses
// it depends on (read-centric) or that depend on it (write-centric).
// Keys exist only for accesses with at least one dependency: a missing
// key means the access is independent.
type Map map[types.AccessID]IDSet

// add records dep under key, allocating the set on first use.
func (m Map) add(key, dep types.AccessID) {
	set, ok := m[key]
	if !ok {
		set = make(IDSet)
		m[key] = set
	}
	set.Add(dep)
}
