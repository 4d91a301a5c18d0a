// Package analyze implements the two analyses tracekit runs over a
// parsed trace: the dependency breakdown (how many opposite-direction
// accesses each read or write depends on) and the hot-write page
// histogram (how many distinct reads touched each page of a write's
// data before it was overwritten).
//
// Both analyses are pure functions of the access sequence and the
// dependency maps. They never mutate their inputs, run synchronously,
// and hold no state between calls.
package analyze
