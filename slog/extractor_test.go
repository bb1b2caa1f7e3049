package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/rosterparse"
	"github.com/fwojciec/rosterparse/mock"
	rpslog "github.com/fwojciec/rosterparse/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_ExtractRoster(t *testing.T) {
	t.Parallel()

	t.Run("logs players, teams and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &rosterparse.Roster{Players: []rosterparse.Player{
			{Name: "Jane Doe", Role: rosterparse.RolePitcher, Team: "Sharks"},
			{Name: "Will Smith", Role: rosterparse.RoleBatter, Team: "Sharks"},
			{Name: "Pete Alonso", Role: rosterparse.RoleBatter, Team: "Eagles"},
		}}
		inner := &mock.RosterExtractor{
			ExtractRosterFn: func(html string) (*rosterparse.Roster, error) {
				return want, nil
			},
		}

		extractor := rpslog.NewLoggingExtractor(inner, logger)
		roster, err := extractor.ExtractRoster("<html>rosters</html>")

		require.NoError(t, err)
		assert.Same(t, want, roster)
		output := buf.String()
		assert.Contains(t, output, "extract roster")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "teams=2")
		assert.Contains(t, output, "players=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RosterExtractor{
			ExtractRosterFn: func(html string) (*rosterparse.Roster, error) {
				return nil, errors.New("parse error")
			},
		}

		extractor := rpslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.ExtractRoster("<html>")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "players=0")
		assert.Contains(t, output, "err=\"parse error\"")
	})
}
