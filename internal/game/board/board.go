package board

import (
	"fmt"
	"sort"
)

// Occupant is the view of a unit the board needs for occupancy and
// enumeration. The unit package implements it.
type Occupant interface {
	// ID returns the unit's unique identifier.
	ID() string
	// Side returns which player owns the unit.
	Side() Side
	// Position returns the unit's current cell.
	Position() Position
	// SetPosition records the unit's new cell. Only the board calls this.
	SetPosition(Position)
	// RemainingMovement returns the movement points left this turn.
	RemainingMovement() int
	// AttackRange returns the unit's current attack reach in cells (>= 1).
	AttackRange() int
}

// Board is a fixed-size grid with one-unit-per-cell occupancy.
//
// Invariant: the cell-to-unit mapping is partial and injective: every placed
// unit occupies exactly one cell and every cell holds at most one unit, and
// each placed unit's stored Position matches its cell.
//
// Board is not safe for concurrent use; a match serialises access behind its
// own lock.
type Board struct {
	width          int
	height         int
	territoryDepth int
	cells          map[Position]Occupant
	placed         map[string]Position // unit ID → cell
}

// DefaultTerritoryDepth is the number of rows in each home zone on the
// reference 14x12 board.
const DefaultTerritoryDepth = 3

// New creates an empty Board of the given dimensions with home zones
// territoryDepth rows deep on each edge.
//
// Precondition: width >= 1, height >= 2*territoryDepth, territoryDepth >= 1.
// Panics otherwise, signaling corrupted configuration.
func New(width, height, territoryDepth int) *Board {
	if width < 1 || territoryDepth < 1 || height < 2*territoryDepth {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d with territory depth %d",
			width, height, territoryDepth))
	}
	return &Board{
		width:          width,
		height:         height,
		territoryDepth: territoryDepth,
		cells:          make(map[Position]Occupant),
		placed:         make(map[string]Position),
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// IsValidPosition reports whether p is inside the board bounds.
func (b *Board) IsValidPosition(p Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// Place puts an unplaced unit on cell p.
//
// Returns false with no mutation if p is out of bounds, p is occupied, or the
// unit is already on the board. On success the unit's stored position and the
// occupancy map update together.
func (b *Board) Place(u Occupant, p Position) bool {
	if !b.IsValidPosition(p) {
		return false
	}
	if _, occupied := b.cells[p]; occupied {
		return false
	}
	if _, already := b.placed[u.ID()]; already {
		return false
	}
	b.cells[p] = u
	b.placed[u.ID()] = p
	u.SetPosition(p)
	return true
}

// Move relocates a placed unit to cell p.
//
// Returns false with no mutation if p is out of bounds, p is occupied, or the
// unit is not on the board. Movement budget is the caller's concern; Move
// only enforces bounds and occupancy.
func (b *Board) Move(u Occupant, p Position) bool {
	from, ok := b.placed[u.ID()]
	if !ok {
		return false
	}
	if !b.IsValidPosition(p) {
		return false
	}
	if _, occupied := b.cells[p]; occupied {
		return false
	}
	delete(b.cells, from)
	b.cells[p] = u
	b.placed[u.ID()] = p
	u.SetPosition(p)
	return true
}

// Remove clears the unit's cell. Removing a unit that is not on the board is
// a no-op.
//
// Postcondition: UnitAt(u.Position()) no longer returns u.
func (b *Board) Remove(u Occupant) {
	p, ok := b.placed[u.ID()]
	if !ok {
		return
	}
	delete(b.cells, p)
	delete(b.placed, u.ID())
}

// UnitAt returns the unit occupying cell (x,y), if any.
func (b *Board) UnitAt(x, y int) (Occupant, bool) {
	u, ok := b.cells[Position{X: x, Y: y}]
	return u, ok
}

// Units returns every placed unit, ordered by ID for deterministic iteration.
func (b *Board) Units() []Occupant {
	ids := make([]string, 0, len(b.placed))
	for id := range b.placed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Occupant, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.cells[b.placed[id]])
	}
	return out
}

// ValidMovementPositions returns every cell the unit can move to this turn:
// in bounds, within Chebyshev distance of its remaining movement, not its own
// cell, and unoccupied. Cells are returned in row-major order.
//
// Precondition: u is placed on the board. Returns nil otherwise.
func (b *Board) ValidMovementPositions(u Occupant) []Position {
	from, ok := b.placed[u.ID()]
	if !ok {
		return nil
	}
	reach := u.RemainingMovement()
	if reach <= 0 {
		return nil
	}
	var out []Position
	for y := max(0, from.Y-reach); y <= min(b.height-1, from.Y+reach); y++ {
		for x := max(0, from.X-reach); x <= min(b.width-1, from.X+reach); x++ {
			p := Position{X: x, Y: y}
			if p == from {
				continue
			}
			if _, occupied := b.cells[p]; occupied {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// ValidAttackTargets returns every enemy unit within the unit's attack range,
// in row-major board order.
//
// Precondition: u is placed on the board. Returns nil otherwise.
func (b *Board) ValidAttackTargets(u Occupant) []Occupant {
	from, ok := b.placed[u.ID()]
	if !ok {
		return nil
	}
	reach := u.AttackRange()
	var out []Occupant
	for y := max(0, from.Y-reach); y <= min(b.height-1, from.Y+reach); y++ {
		for x := max(0, from.X-reach); x <= min(b.width-1, from.X+reach); x++ {
			p := Position{X: x, Y: y}
			if p == from {
				continue
			}
			other, occupied := b.cells[p]
			if !occupied || other.Side() == u.Side() {
				continue
			}
			out = append(out, other)
		}
	}
	return out
}

// TerritoryOf classifies p into a home zone or neutral ground. The north
// zone spans the first territoryDepth rows, the south zone the last.
//
// Precondition: p is in bounds. Panics otherwise.
func (b *Board) TerritoryOf(p Position) Territory {
	if !b.IsValidPosition(p) {
		panic("board: TerritoryOf called with out-of-bounds position " + p.String())
	}
	switch {
	case p.Y < b.territoryDepth:
		return TerritoryNorth
	case p.Y >= b.height-b.territoryDepth:
		return TerritorySouth
	default:
		return TerritoryNeutral
	}
}

// HomeTerritory returns the territory owned by side.
func HomeTerritory(side Side) Territory {
	if side == SideNorth {
		return TerritoryNorth
	}
	return TerritorySouth
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
