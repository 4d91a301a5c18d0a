package format

import "errors"

var (
	// ErrFieldCount indicates a record line had the wrong number of fields.
	ErrFieldCount = errors.New("format: wrong field count")
	// ErrBadDirection indicates an op field that is neither a read nor a write token.
	ErrBadDirection = errors.New("format: bad direction token")
	// ErrBadNumber indicates an lba or blocks field that did not parse as a
	// non-negative integer.
	ErrBadNumber = errors.New("format: bad numeric field")
)
