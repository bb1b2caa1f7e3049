package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/rosterparse"
)

// Ensure LoggingExtractor implements rosterparse.RosterExtractor.
var _ rosterparse.RosterExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a RosterExtractor with logging.
type LoggingExtractor struct {
	next   rosterparse.RosterExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next rosterparse.RosterExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractRoster delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractRoster(html string) (roster *rosterparse.Roster, err error) {
	defer func(begin time.Time) {
		var players, teams int
		if roster != nil {
			players = len(roster.Players)
			teams = len(roster.Teams())
		}
		e.logger.Info("extract roster",
			"bytes", len(html),
			"teams", teams,
			"players", players,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractRoster(html)
}
