package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rosterparse"
)

// Ensure Extractor implements rosterparse.RosterExtractor.
var _ rosterparse.RosterExtractor = (*Extractor)(nil)

// Extractor reads rosters from league roster pages using CSS selectors.
type Extractor struct {
	selectors   Selectors
	corrections *rosterparse.Corrections
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors overrides the page selectors.
func WithSelectors(s Selectors) Option {
	return func(e *Extractor) {
		e.selectors = s
	}
}

// WithCorrections sets the name correction table.
func WithCorrections(c *rosterparse.Corrections) Option {
	return func(e *Extractor) {
		e.corrections = c
	}
}

// NewExtractor creates a new Extractor for Yahoo roster pages with the
// default name corrections.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selectors:   DefaultSelectors(),
		corrections: rosterparse.DefaultCorrections(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractRoster parses HTML and returns the players of every team.
func (e *Extractor) ExtractRoster(html string) (*rosterparse.Roster, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, rosterparse.Errorf(rosterparse.EINVALID, "failed to parse HTML: %v", err)
	}
	return e.ExtractDocument(doc), nil
}

// ExtractDocument returns the players of every team in an already parsed
// document, in team order and then row order. Players without a name or
// without a role (bench and DL slots) are dropped.
//
// A page that does not have the expected layout yields an empty roster.
func (e *Extractor) ExtractDocument(doc *goquery.Document) *rosterparse.Roster {
	roster := rosterparse.NewRoster()

	doc.Find(e.selectors.Container).Find(e.selectors.Team).Each(func(_ int, section *goquery.Selection) {
		team := firstText(section, e.selectors.TeamName)

		section.Find(e.selectors.Row).Each(func(_ int, row *goquery.Selection) {
			player := e.extractPlayer(row, team)
			if !player.Valid() {
				return
			}
			roster.Players = append(roster.Players, player)
		})
	})

	return roster
}

func (e *Extractor) extractPlayer(row *goquery.Selection, team string) rosterparse.Player {
	position := firstText(row, e.selectors.Position)
	name := firstText(row, e.selectors.PlayerName)

	return rosterparse.Player{
		Name: e.corrections.Apply(name),
		Role: rosterparse.ClassifyRole(position),
		Team: team,
	}
}

// firstText returns the trimmed text of the first element under root
// matching selector, or "" if nothing matches.
func firstText(root *goquery.Selection, selector string) string {
	sel := root.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.Text())
}
