package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rosterparse"
)

// Ensure LoggingSnapshotReader implements rosterparse.SnapshotReader.
var _ rosterparse.SnapshotReader = (*LoggingSnapshotReader)(nil)

// LoggingSnapshotReader wraps a SnapshotReader with logging.
type LoggingSnapshotReader struct {
	next   rosterparse.SnapshotReader
	logger *slog.Logger
}

// NewLoggingSnapshotReader creates a new LoggingSnapshotReader.
func NewLoggingSnapshotReader(next rosterparse.SnapshotReader, logger *slog.Logger) *LoggingSnapshotReader {
	return &LoggingSnapshotReader{next: next, logger: logger}
}

// ReadSnapshot delegates to the wrapped reader and logs the operation.
func (r *LoggingSnapshotReader) ReadSnapshot(ctx context.Context, path string) (snap *rosterparse.Snapshot, err error) {
	defer func(begin time.Time) {
		var size int
		var hash string
		if snap != nil {
			size = len(snap.HTML)
			hash = snap.Hash
		}
		r.logger.Info("read snapshot",
			"path", path,
			"bytes", size,
			"hash", hash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadSnapshot(ctx, path)
}
