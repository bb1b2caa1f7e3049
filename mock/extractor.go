package mock

import "github.com/fwojciec/rosterparse"

var _ rosterparse.RosterExtractor = (*RosterExtractor)(nil)

// RosterExtractor is a mock implementation of rosterparse.RosterExtractor.
type RosterExtractor struct {
	ExtractRosterFn func(html string) (*rosterparse.Roster, error)
}

func (e *RosterExtractor) ExtractRoster(html string) (*rosterparse.Roster, error) {
	return e.ExtractRosterFn(html)
}
