// Package board implements the fixed-grid spatial model for the Summoner's
// Grid combat core: occupancy, the Chebyshev distance metric, movement and
// targeting enumeration, and territory classification.
package board

import "fmt"

// Side identifies one of the two players in a match.
type Side int

const (
	// SideNorth owns the home territory at the top rows of the board.
	SideNorth Side = iota
	// SideSouth owns the home territory at the bottom rows of the board.
	SideSouth
)

// String returns the human-readable side name.
func (s Side) String() string {
	switch s {
	case SideNorth:
		return "north"
	case SideSouth:
		return "south"
	default:
		return "unknown"
	}
}

// Opponent returns the opposing side.
//
// Precondition: s is SideNorth or SideSouth.
func (s Side) Opponent() Side {
	if s == SideNorth {
		return SideSouth
	}
	return SideNorth
}

// Territory classifies a board cell relative to the two home zones.
type Territory int

const (
	// TerritoryNeutral is any cell outside both home zones.
	TerritoryNeutral Territory = iota
	// TerritoryNorth is the north side's home zone.
	TerritoryNorth
	// TerritorySouth is the south side's home zone.
	TerritorySouth
)

// String returns the human-readable territory name.
func (t Territory) String() string {
	switch t {
	case TerritoryNorth:
		return "north territory"
	case TerritorySouth:
		return "south territory"
	default:
		return "neutral"
	}
}

// Position is a cell coordinate on the board. X grows rightward, Y downward;
// row 0 is the north edge.
type Position struct {
	X int
	Y int
}

// String returns the coordinate in "(x,y)" form.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Chebyshev returns the Chebyshev ("king move") distance between a and b:
// max(|dx|, |dy|). This is the single distance metric for movement, attack
// range, and adjacency; it is never mixed with Manhattan distance.
//
// Postcondition: Returns >= 0; 0 iff a == b.
func Chebyshev(a, b Position) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
