package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat  ErrKind = iota // malformed trace records (bad op/field)
	ErrKindCorrupt                // structurally impossible data (negative spans, dangling IDs)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two typed errors by kind, so callers can test against the
// sentinels below with errors.Is even when the message was specialized.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotTrace indicates the file could not be parsed as a trace log.
	ErrNotTrace = &Error{Kind: ErrKindFormat, Msg: "not a trace log"}
	// ErrCorrupt indicates structurally impossible input data, such as a
	// dependency entry referencing an unknown access or a negative page
	// span. This always signals an upstream bug, never a user error.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt trace data"}
)

// CorruptError builds an ErrKindCorrupt error with a specific message,
// matchable against ErrCorrupt via errors.Is.
func CorruptError(msg string) *Error {
	return &Error{Kind: ErrKindCorrupt, Msg: msg}
}
