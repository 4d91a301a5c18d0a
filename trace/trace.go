package trace

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/joshuapare/tracekit/internal/format"
	"github.com/joshuapare/tracekit/internal/mmfile"
	"github.com/joshuapare/tracekit/pkg/types"
)

// Trace is a fully parsed trace log: the ordered access sequence plus
// file metadata. It is immutable after Open.
type Trace struct {
	path     string
	size     int64
	accesses []types.Access
}

// Open loads and parses the trace log at path. The whole file is
// decoded eagerly; any malformed record line fails the open with the
// offending line number.
func Open(path string) (*Trace, error) {
	start := time.Now()

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, errors.Wrapf(err, "trace: open %s", path)
	}
	defer cleanup() //nolint:errcheck // read-only mapping; nothing to flush

	accesses, skipped, err := parseRecords(data)
	if err != nil {
		return nil, &types.Error{
			Kind: types.ErrKindFormat,
			Msg:  fmt.Sprintf("trace: %s", path),
			Err:  err,
		}
	}

	log.WithFields(log.Fields{
		"path":    path,
		"records": len(accesses),
		"skipped": skipped,
		"elapsed": time.Since(start),
	}).Debug("parsed trace log")

	return &Trace{
		path:     path,
		size:     int64(len(data)),
		accesses: accesses,
	}, nil
}

// parseRecords decodes every record line in data, assigning IDs in file
// order. It returns the number of skipped (blank or comment) lines
// alongside the records.
func parseRecords(data []byte) ([]types.Access, int, error) {
	var accesses []types.Access
	skipped := 0
	lineNo := 0
	for len(data) > 0 {
		lineNo++
		line := data
		if nl := bytes.IndexByte(data, '\n'); nl >= 0 {
			line = data[:nl]
			data = data[nl+1:]
		} else {
			data = nil
		}

		text := string(bytes.TrimRight(line, "\r"))
		if !format.IsRecord(text) {
			skipped++
			continue
		}
		rec, err := format.ParseLine(text)
		if err != nil {
			return nil, skipped, fmt.Errorf("line %d: %w", lineNo, err)
		}

		dir := types.DirWrite
		if rec.Read {
			dir = types.DirRead
		}
		accesses = append(accesses, types.Access{
			ID:     types.AccessID(len(accesses)),
			Dir:    dir,
			LBA:    rec.LBA,
			Blocks: rec.Blocks,
		})
	}
	return accesses, skipped, nil
}

// Path returns the file the trace was loaded from.
func (t *Trace) Path() string { return t.path }

// Size returns the trace file size in bytes.
func (t *Trace) Size() int64 { return t.size }

// Len returns the number of access records.
func (t *Trace) Len() int { return len(t.accesses) }

// Accesses returns the ordered access sequence. The slice is shared
// with the Trace and must be treated as read-only.
func (t *Trace) Accesses() []types.Access { return t.accesses }
