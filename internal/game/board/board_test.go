package board_test

import (
	"fmt"
	"testing"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// pawn is a minimal Occupant implementation for board tests.
type pawn struct {
	id       string
	side     board.Side
	pos      board.Position
	movement int
	reach    int
}

func (p *pawn) ID() string                     { return p.id }
func (p *pawn) Side() board.Side               { return p.side }
func (p *pawn) Position() board.Position       { return p.pos }
func (p *pawn) SetPosition(pos board.Position) { p.pos = pos }
func (p *pawn) RemainingMovement() int         { return p.movement }
func (p *pawn) AttackRange() int               { return p.reach }

func newPawn(id string, side board.Side) *pawn {
	return &pawn{id: id, side: side, movement: 2, reach: 1}
}

// referenceBoard returns the 14x12 board from the game rules.
func referenceBoard() *board.Board {
	return board.New(14, 12, board.DefaultTerritoryDepth)
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		a, b board.Position
		want int
	}{
		{board.Position{X: 2, Y: 2}, board.Position{X: 5, Y: 4}, 3},
		{board.Position{X: 5, Y: 4}, board.Position{X: 2, Y: 2}, 3},
		{board.Position{X: 0, Y: 0}, board.Position{X: 0, Y: 0}, 0},
		{board.Position{X: 3, Y: 3}, board.Position{X: 4, Y: 4}, 1}, // diagonal costs 1
		{board.Position{X: 0, Y: 0}, board.Position{X: 5, Y: 5}, 5},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, board.Chebyshev(tc.a, tc.b), "%v→%v", tc.a, tc.b)
	}
}

func TestBoard_IsValidPosition(t *testing.T) {
	b := referenceBoard()
	assert.True(t, b.IsValidPosition(board.Position{X: 0, Y: 0}))
	assert.True(t, b.IsValidPosition(board.Position{X: 13, Y: 11}))
	assert.False(t, b.IsValidPosition(board.Position{X: 14, Y: 0}))
	assert.False(t, b.IsValidPosition(board.Position{X: 0, Y: 12}))
	assert.False(t, b.IsValidPosition(board.Position{X: -1, Y: 3}))
}

func TestBoard_New_InvalidDimensionsPanics(t *testing.T) {
	assert.Panics(t, func() { board.New(0, 12, 3) })
	assert.Panics(t, func() { board.New(14, 5, 3) }, "height must fit both home zones")
	assert.Panics(t, func() { board.New(14, 12, 0) })
}

func TestBoard_PlaceAndUnitAt(t *testing.T) {
	b := referenceBoard()
	u := newPawn("u1", board.SideNorth)

	require.True(t, b.Place(u, board.Position{X: 3, Y: 1}))
	assert.Equal(t, board.Position{X: 3, Y: 1}, u.Position(), "placement stores the position")

	got, ok := b.UnitAt(3, 1)
	require.True(t, ok)
	assert.Same(t, u, got.(*pawn))

	_, ok = b.UnitAt(4, 1)
	assert.False(t, ok)
}

func TestBoard_Place_Failures(t *testing.T) {
	b := referenceBoard()
	u := newPawn("u1", board.SideNorth)
	v := newPawn("u2", board.SideSouth)

	assert.False(t, b.Place(u, board.Position{X: 99, Y: 0}), "out of bounds")
	require.True(t, b.Place(u, board.Position{X: 3, Y: 1}))
	assert.False(t, b.Place(v, board.Position{X: 3, Y: 1}), "occupied cell")
	assert.False(t, b.Place(u, board.Position{X: 4, Y: 1}), "already placed")

	// Failed placements leave no trace.
	_, ok := b.UnitAt(4, 1)
	assert.False(t, ok)
	assert.Equal(t, board.Position{X: 3, Y: 1}, u.Position())
}

func TestBoard_Move(t *testing.T) {
	b := referenceBoard()
	u := newPawn("u1", board.SideNorth)
	v := newPawn("u2", board.SideSouth)
	require.True(t, b.Place(u, board.Position{X: 3, Y: 1}))
	require.True(t, b.Place(v, board.Position{X: 5, Y: 5}))

	require.True(t, b.Move(u, board.Position{X: 4, Y: 2}))
	assert.Equal(t, board.Position{X: 4, Y: 2}, u.Position())
	_, ok := b.UnitAt(3, 1)
	assert.False(t, ok, "old cell is vacated")

	assert.False(t, b.Move(u, board.Position{X: 5, Y: 5}), "occupied cell")
	assert.False(t, b.Move(u, board.Position{X: -1, Y: 2}), "out of bounds")
	assert.Equal(t, board.Position{X: 4, Y: 2}, u.Position(), "failed moves mutate nothing")

	w := newPawn("u3", board.SideNorth)
	assert.False(t, b.Move(w, board.Position{X: 0, Y: 0}), "unplaced unit cannot move")
}

func TestBoard_Remove(t *testing.T) {
	b := referenceBoard()
	u := newPawn("u1", board.SideNorth)
	require.True(t, b.Place(u, board.Position{X: 3, Y: 1}))

	b.Remove(u)
	_, ok := b.UnitAt(3, 1)
	assert.False(t, ok)
	assert.Empty(t, b.Units())

	b.Remove(u) // no-op
}

func TestBoard_Units_SortedByID(t *testing.T) {
	b := referenceBoard()
	positions := map[string]board.Position{
		"c": {X: 1, Y: 1},
		"a": {X: 4, Y: 2},
		"b": {X: 7, Y: 3},
		"z": {X: 9, Y: 9},
	}
	for _, id := range []string{"c", "a", "b", "z"} {
		require.True(t, b.Place(newPawn(id, board.SideNorth), positions[id]))
	}

	var ids []string
	for _, u := range b.Units() {
		ids = append(ids, u.ID())
	}
	assert.Equal(t, []string{"a", "b", "c", "z"}, ids)
}

func TestBoard_ValidMovementPositions(t *testing.T) {
	b := referenceBoard()
	u := newPawn("u1", board.SideNorth)
	u.movement = 3
	require.True(t, b.Place(u, board.Position{X: 5, Y: 5}))

	blocker := newPawn("u2", board.SideSouth)
	require.True(t, b.Place(blocker, board.Position{X: 6, Y: 5}))

	got := b.ValidMovementPositions(u)
	set := make(map[board.Position]bool, len(got))
	for _, p := range got {
		set[p] = true
	}

	assert.True(t, set[board.Position{X: 8, Y: 5}], "reachable at distance 3")
	assert.True(t, set[board.Position{X: 6, Y: 6}], "diagonal within reach")
	assert.False(t, set[board.Position{X: 9, Y: 9}], "distance 4 is out of reach")
	assert.False(t, set[board.Position{X: 5, Y: 5}], "own cell excluded")
	assert.False(t, set[board.Position{X: 6, Y: 5}], "occupied cell excluded")
}

func TestBoard_ValidMovementPositions_NoBudget(t *testing.T) {
	b := referenceBoard()
	u := newPawn("u1", board.SideNorth)
	u.movement = 0
	require.True(t, b.Place(u, board.Position{X: 5, Y: 5}))
	assert.Empty(t, b.ValidMovementPositions(u))
}

func TestBoard_ValidAttackTargets(t *testing.T) {
	b := referenceBoard()
	u := newPawn("u1", board.SideNorth)
	u.reach = 2
	require.True(t, b.Place(u, board.Position{X: 5, Y: 5}))

	inRange := newPawn("e1", board.SideSouth)
	require.True(t, b.Place(inRange, board.Position{X: 7, Y: 6}))
	outOfRange := newPawn("e2", board.SideSouth)
	require.True(t, b.Place(outOfRange, board.Position{X: 8, Y: 5}))
	friendly := newPawn("f1", board.SideNorth)
	require.True(t, b.Place(friendly, board.Position{X: 5, Y: 6}))

	targets := b.ValidAttackTargets(u)
	require.Len(t, targets, 1)
	assert.Equal(t, "e1", targets[0].ID())
}

func TestBoard_TerritoryOf(t *testing.T) {
	b := referenceBoard()
	tests := []struct {
		y    int
		want board.Territory
	}{
		{0, board.TerritoryNorth},
		{2, board.TerritoryNorth},
		{3, board.TerritoryNeutral},
		{8, board.TerritoryNeutral},
		{9, board.TerritorySouth},
		{11, board.TerritorySouth},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, b.TerritoryOf(board.Position{X: 4, Y: tc.y}), "row %d", tc.y)
	}

	assert.Panics(t, func() { b.TerritoryOf(board.Position{X: 0, Y: 12}) })
	assert.Equal(t, board.TerritoryNorth, board.HomeTerritory(board.SideNorth))
	assert.Equal(t, board.TerritorySouth, board.HomeTerritory(board.SideSouth))
}

// TestBoard_OccupancyInjective_Property drives random placements, moves, and
// removals and checks the cell→unit mapping stays injective with positions in
// sync.
func TestBoard_OccupancyInjective_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := board.New(6, 8, 2)
		units := make([]*pawn, 4)
		for i := range units {
			units[i] = newPawn(fmt.Sprintf("u%d", i), board.Side(i%2))
		}

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for s := 0; s < steps; s++ {
			u := units[rapid.IntRange(0, len(units)-1).Draw(rt, "unit")]
			p := board.Position{
				X: rapid.IntRange(-1, 6).Draw(rt, "x"),
				Y: rapid.IntRange(-1, 8).Draw(rt, "y"),
			}
			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				b.Place(u, p)
			case 1:
				b.Move(u, p)
			case 2:
				b.Remove(u)
			}
		}

		seen := make(map[string]bool)
		for _, u := range b.Units() {
			assert.False(rt, seen[u.ID()], "unit appears once")
			seen[u.ID()] = true
			got, ok := b.UnitAt(u.Position().X, u.Position().Y)
			require.True(rt, ok, "stored position matches a cell")
			assert.Equal(rt, u.ID(), got.ID(), "cell holds the unit that claims it")
		}
	})
}
