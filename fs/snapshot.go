// Package fs provides file-based input and output for roster snapshots.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rosterparse"
	"golang.org/x/net/html/charset"
)

// Ensure SnapshotReader implements rosterparse.SnapshotReader at compile time.
var _ rosterparse.SnapshotReader = (*SnapshotReader)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SnapshotReader reads saved roster pages from the local filesystem.
type SnapshotReader struct{}

// NewSnapshotReader creates a new SnapshotReader.
func NewSnapshotReader() *SnapshotReader {
	return &SnapshotReader{}
}

// ReadSnapshot reads the whole file at path.
//
// Pages saved as valid UTF-8 are used as is, minus any byte order mark.
// Anything else is decoded using the BOM or <meta charset> declaration.
func (r *SnapshotReader) ReadSnapshot(ctx context.Context, path string) (*rosterparse.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, rosterparse.Errorf(rosterparse.ENOTFOUND, "snapshot %q not found", path)
	} else if err != nil {
		return nil, rosterparse.Errorf(rosterparse.EINTERNAL, "failed to read snapshot %q: %v", path, err)
	}

	html, err := decode(data)
	if err != nil {
		return nil, rosterparse.Errorf(rosterparse.EINVALID, "failed to decode snapshot %q: %v", path, err)
	}

	return &rosterparse.Snapshot{
		Path: path,
		HTML: html,
		Hash: ComputeHash(html),
	}, nil
}

// decode converts raw page bytes to a UTF-8 string.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}

	rd, err := charset.NewReader(bytes.NewReader(data), "text/html")
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(rd)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
