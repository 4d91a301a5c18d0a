package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one decoded trace record, before IDs are assigned.
type Record struct {
	Read   bool
	LBA    int64
	Blocks int64
}

// IsRecord reports whether the line holds a record at all. Blank lines
// and comment lines are skipped by callers without touching ParseLine.
func IsRecord(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && trimmed[0] != CommentByte
}

// ParseLine decodes a single record line. The caller is expected to
// have filtered non-record lines with IsRecord first.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != RecordFields {
		return Record{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), RecordFields)
	}

	var rec Record
	switch {
	case matchToken(fields[0], ReadTokens):
		rec.Read = true
	case matchToken(fields[0], WriteTokens):
		rec.Read = false
	default:
		return Record{}, fmt.Errorf("%w: %q", ErrBadDirection, fields[0])
	}

	var err error
	if rec.LBA, err = parseBlockCount(fields[1]); err != nil {
		return Record{}, fmt.Errorf("lba: %w", err)
	}
	if rec.Blocks, err = parseBlockCount(fields[2]); err != nil {
		return Record{}, fmt.Errorf("blocks: %w", err)
	}
	return rec, nil
}

func matchToken(field string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.EqualFold(field, tok) {
			return true
		}
	}
	return false
}

// parseBlockCount parses a non-negative base-10 block quantity.
func parseBlockCount(field string) (int64, error) {
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, field)
	}
	return n, nil
}
