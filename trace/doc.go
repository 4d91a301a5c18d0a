// Package trace loads storage I/O trace logs and runs tracekit's
// analyses over them.
//
// # Overview
//
// A trace log is a line-oriented text file where each line records one
// logical I/O operation: direction (read or write), starting logical
// block address, and block count. Opening a trace parses every record
// into an immutable access sequence; record identifiers are positional,
// so an access's ID always indexes the sequence it came from.
//
// # Opening a trace
//
//	tr, err := trace.Open("/path/to/device.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// On Unix the file is memory-mapped while parsing; on other platforms
// it is read into memory. Either way the backing is released before
// Open returns, so a Trace never holds file resources.
//
// # Running the analysis
//
//	rep, err := tr.Analyze(types.DefaultPageBlocks)
//
// Analyze builds the read-centric and write-centric dependency maps,
// classifies every access as independent, short, or long dependent,
// and computes the hot-write page histogram: for each page of every
// write that was read at least once, how many distinct reads touched
// the page before it was overwritten.
package trace
