package rosterparse

// Role classifies a player for scoring purposes.
type Role string

// Player roles. RoleUnclassified marks a player that should not appear in
// the output, such as one parked on the bench or the disabled list.
const (
	RoleUnclassified Role = ""
	RolePitcher      Role = "Pitcher"
	RoleBatter       Role = "Batter"
)

// Roster slot codes with special meaning.
const (
	PositionBench          = "BN"
	PositionDisabledList   = "DL"
	PositionStarter        = "SP"
	PositionReliever       = "RP"
	PositionPitcherGeneric = "P"
)

// IsExcludedPosition reports whether a roster slot is excluded from
// scoring entirely.
func IsExcludedPosition(position string) bool {
	switch position {
	case PositionBench, PositionDisabledList:
		return true
	}
	return false
}

// IsPitcherPosition reports whether a roster slot holds a pitcher.
func IsPitcherPosition(position string) bool {
	switch position {
	case PositionStarter, PositionReliever, PositionPitcherGeneric:
		return true
	}
	return false
}

// ClassifyRole derives a player's role from the roster slot code.
// Bench and DL slots are unclassified; every non-pitching slot, including
// an empty one, is a batter.
func ClassifyRole(position string) Role {
	switch {
	case IsExcludedPosition(position):
		return RoleUnclassified
	case IsPitcherPosition(position):
		return RolePitcher
	default:
		return RoleBatter
	}
}
