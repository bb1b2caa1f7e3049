package rosterparse

// Player is a single rostered player as it appears in the output.
type Player struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
	Team string `json:"team"`
}

// Validate returns an error if the player is missing a name or a role.
func (p *Player) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "player name required")
	}
	if p.Role == RoleUnclassified {
		return Errorf(EINVALID, "player role required")
	}
	return nil
}

// Valid reports whether the player passes Validate.
func (p *Player) Valid() bool {
	return p.Validate() == nil
}

// Roster is the combined list of players across all teams of a league,
// in page order.
type Roster struct {
	Players []Player `json:"players"`
}

// Teams returns the distinct team names in order of first appearance.
func (r *Roster) Teams() []string {
	var teams []string
	seen := make(map[string]bool)
	for _, p := range r.Players {
		if seen[p.Team] {
			continue
		}
		seen[p.Team] = true
		teams = append(teams, p.Team)
	}
	return teams
}

// Append adds the players of other to the end of r.
func (r *Roster) Append(other *Roster) {
	if other == nil {
		return
	}
	r.Players = append(r.Players, other.Players...)
}

// NewRoster returns an empty roster whose players encode as [] rather
// than null.
func NewRoster() *Roster {
	return &Roster{Players: []Player{}}
}

// RosterExtractor extracts a roster from a league rosters page.
type RosterExtractor interface {
	// ExtractRoster parses raw HTML and returns every well-formed player
	// found in it. Missing page elements never cause an error; only HTML
	// that cannot be parsed at all does.
	ExtractRoster(html string) (*Roster, error)
}
