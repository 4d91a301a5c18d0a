// Package types defines the public data model shared by the tracekit
// packages: access records, direction flags, page-size constants, and
// the typed error categories implementations return.
//
// The types here are deliberately small and copyable. An Access is a
// value, never a pointer, and an AccessID doubles as an index into the
// access sequence it came from, which keeps dependency lookups
// allocation-free.
package types
