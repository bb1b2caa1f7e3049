package goquery

// Selectors describes where the pieces of a league rosters page live.
// Every selector except Container is evaluated relative to the element
// found by the previous step.
type Selectors struct {
	// Container holds all team sections.
	Container string

	// Team matches one team section inside the container.
	Team string

	// TeamName matches the link carrying the team's display name.
	TeamName string

	// Row matches one player row inside a team section.
	Row string

	// Position matches the roster slot cell inside a row.
	Position string

	// PlayerName matches the player's name link inside a row.
	PlayerName string
}

// DefaultSelectors returns the selectors for Yahoo fantasy baseball
// league roster pages, where teams are laid out in two columns.
func DefaultSelectors() Selectors {
	return Selectors{
		Container:  "div.Bd",
		Team:       "div.Grid-u-1-2.Pend-xl",
		TeamName:   "p a",
		Row:        "tbody tr",
		Position:   "td.pos",
		PlayerName: "td.player div.Grid-bind-end div.ysf-player-name a.name",
	}
}
