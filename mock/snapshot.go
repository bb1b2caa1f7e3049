package mock

import (
	"context"

	"github.com/fwojciec/rosterparse"
)

var _ rosterparse.SnapshotReader = (*SnapshotReader)(nil)

// SnapshotReader is a mock implementation of rosterparse.SnapshotReader.
type SnapshotReader struct {
	ReadSnapshotFn func(ctx context.Context, path string) (*rosterparse.Snapshot, error)
}

func (r *SnapshotReader) ReadSnapshot(ctx context.Context, path string) (*rosterparse.Snapshot, error) {
	return r.ReadSnapshotFn(ctx, path)
}
