// Package format houses the low-level decoder for trace log records.
// The goal is to keep the parsing focused, allocation-free where
// possible, and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
//
// A trace log is line-oriented text. Each record line carries three
// whitespace-separated fields:
//
//	<op> <lba> <blocks>
//
// where op is R/W (or READ/WRITE, case-insensitive), lba is the
// starting logical block address, and blocks is the block count.
// Blank lines and lines starting with '#' are not records.
package format

const (
	// CommentByte introduces a comment line; the whole line is skipped.
	CommentByte = '#'

	// RecordFields is the number of whitespace-separated fields in a
	// record line.
	RecordFields = 3
)

// Direction tokens accepted in the op field. Matching is
// case-insensitive; the single-letter forms are what trace capture
// tools emit, the long forms are kept for hand-written fixtures.
var (
	ReadTokens  = []string{"r", "read"}
	WriteTokens = []string{"w", "write"}
)
