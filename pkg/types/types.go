package types

// AccessID identifies a single access record. IDs are assigned in trace
// order starting at zero, so an AccessID is also the record's index into
// the access sequence it belongs to.
type AccessID int

// Direction flags whether an access reads or writes.
type Direction uint8

const (
	// DirRead marks an access that reads from the device.
	DirRead Direction = iota
	// DirWrite marks an access that writes to the device.
	DirWrite
)

// String implements the Stringer interface for Direction.
func (d Direction) String() string {
	switch d {
	case DirRead:
		return "read"
	case DirWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Access is one logical I/O operation from the trace. Immutable once
// created; all fields are in logical-block units.
type Access struct {
	// ID is the record's position in the trace, usable as an index
	// into the full access sequence.
	ID AccessID

	// Dir is the access direction (read or write).
	Dir Direction

	// LBA is the starting logical block address.
	LBA int64

	// Blocks is the number of logical blocks covered.
	Blocks int64
}

// IsRead reports whether the access is a read.
func (a Access) IsRead() bool { return a.Dir == DirRead }

const (
	// DefaultPageBlocks is the default page size in logical blocks:
	// a 4 KiB flash page over 512-byte logical blocks. Every run uses
	// a single page size.
	DefaultPageBlocks int64 = 8
)

// PageSpan returns the inclusive page range covered by an extent of
// blocks blocks starting at lba. The end page is derived from the
// first block past the extent, so a page-aligned end still counts the
// boundary page; this mirrors how the analyzers interpret spans and
// must not be "fixed" independently of them. A zero-length extent
// spans exactly one page.
func PageSpan(lba, blocks, pageBlocks int64) (start, end int64) {
	start = lba / pageBlocks
	end = (lba + blocks) / pageBlocks
	return start, end
}
