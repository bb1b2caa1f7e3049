package rosterparse

import "context"

// Snapshot is a saved league rosters page read from disk.
type Snapshot struct {
	Path string
	HTML string // UTF-8
	Hash string // xxhash64 of HTML, lowercase hex
}

// SnapshotReader loads saved roster pages.
type SnapshotReader interface {
	// ReadSnapshot reads the whole page at path and decodes it to UTF-8.
	// Returns ENOTFOUND if the file does not exist.
	ReadSnapshot(ctx context.Context, path string) (*Snapshot, error)
}
