// Package match hosts one combat encounter per Match: a board, its units,
// and a resolver behind a single mutex. Matches are fully isolated from each
// other; a server hosting many concurrent matches locks per match, never per
// unit, because moves and attacks read and write the whole occupancy map.
package match

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/board"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/catalog"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/combat"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/dice"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/unit"
)

// Config holds the per-match rule settings.
type Config struct {
	BoardWidth     int
	BoardHeight    int
	TerritoryDepth int
	// StartingLevel is the level every unit is summoned at.
	StartingLevel int
}

// Match is one live encounter. All methods are safe for concurrent use; the
// whole match serialises behind one lock.
type Match struct {
	mu sync.Mutex

	id         string
	cfg        Config
	board      *board.Board
	units      map[string]*unit.State
	resolver   *combat.Resolver
	logger     *zap.Logger
	turn       int
	activeSide board.Side
	transcript []string
}

// New creates a match drawing combat rolls from src.
//
// Only a seeded source (dice.NewSeededSource) makes the match replayable;
// a crypto source offers no reproducibility guarantee.
//
// Precondition: src and logger must be non-nil; cfg dimensions must be valid
// board dimensions.
func New(cfg Config, src dice.Source, logger *zap.Logger) *Match {
	if logger == nil {
		panic("match: New requires a non-nil logger")
	}
	m := &Match{
		id:         uuid.NewString(),
		cfg:        cfg,
		board:      board.New(cfg.BoardWidth, cfg.BoardHeight, cfg.TerritoryDepth),
		units:      make(map[string]*unit.State),
		resolver:   combat.NewResolver(src),
		logger:     logger,
		turn:       1,
		activeSide: board.SideNorth,
	}
	return m
}

// ID returns the match identifier.
func (m *Match) ID() string { return m.id }

// Turn returns the current turn number, starting at 1.
func (m *Match) Turn() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.turn
}

// ActiveSide returns the side whose turn it is.
func (m *Match) ActiveSide() board.Side {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeSide
}

// Summon creates a unit from catalog records at the configured starting
// level and places it on cell pos.
//
// Precondition: species and role must be non-nil.
// Postcondition: on success the unit is on the board at pos; an error means
// no mutation happened.
func (m *Match) Summon(species *catalog.SpeciesDef, role *catalog.RoleDef, side board.Side, equipment []*catalog.EquipmentDef, pos board.Position) (*unit.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := unit.Summon(species, role, side, m.cfg.StartingLevel, equipment)
	if !m.board.Place(u, pos) {
		return nil, fmt.Errorf("cannot summon %s at %s: cell invalid or occupied", species.Name, pos)
	}
	m.units[u.ID()] = u
	m.record(fmt.Sprintf("turn %d: %s summons %s at %s", m.turn, side, u.Name(), pos))
	m.logger.Debug("unit summoned",
		zap.String("match_id", m.id),
		zap.String("unit_id", u.ID()),
		zap.Stringer("side", side),
		zap.Stringer("position", pos),
	)
	return u, nil
}

// Unit returns the unit with the given id, if it is still in the match.
func (m *Match) Unit(id string) (*unit.State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.units[id]
	return u, ok
}

// Units returns the match's surviving units in board order.
func (m *Match) Units() []*unit.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	occ := m.board.Units()
	out := make([]*unit.State, 0, len(occ))
	for _, o := range occ {
		out = append(out, m.units[o.ID()])
	}
	return out
}

// Board exposes the match board for read-only queries (movement and target
// enumeration, territory checks) by the presentation layer.
func (m *Match) Board() *board.Board { return m.board }

// Move moves the unit to pos, spending movement points.
//
// Returns false when the move is illegal (occupied, out of bounds, over
// budget), which is a normal game event. Returns an error only for protocol
// misuse: unknown unit or acting out of turn.
func (m *Match) Move(unitID string, pos board.Position) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.activeUnit(unitID)
	if err != nil {
		return false, err
	}
	from := u.Position()
	if !u.MoveTo(m.board, pos) {
		return false, nil
	}
	m.record(fmt.Sprintf("turn %d: %s moves %s to %s", m.turn, u.Name(), from, pos))
	return true, nil
}

// Attack resolves the unit's basic attack on target and commits the outcome,
// removing the target from the board if it is defeated.
//
// Precondition: both units must be in the match; the attacker must belong to
// the active side.
func (m *Match) Attack(attackerID, targetID string) (combat.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	atk, err := m.activeUnit(attackerID)
	if err != nil {
		return combat.Outcome{}, err
	}
	tgt, ok := m.units[targetID]
	if !ok {
		return combat.Outcome{}, fmt.Errorf("unit %q not found in match %s", targetID, m.id)
	}

	out := atk.Attack(m.resolver, tgt)
	m.commit(out, tgt)
	return out, nil
}

// Cast resolves a catalog action from the caster onto target and commits the
// outcome.
//
// Precondition: def must be non-nil; both units must be in the match; the
// caster must belong to the active side.
func (m *Match) Cast(casterID string, def *catalog.ActionDef, targetID string) (combat.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	caster, err := m.activeUnit(casterID)
	if err != nil {
		return combat.Outcome{}, err
	}
	tgt, ok := m.units[targetID]
	if !ok {
		return combat.Outcome{}, fmt.Errorf("unit %q not found in match %s", targetID, m.id)
	}

	out := caster.Cast(m.resolver, def, tgt)
	m.commit(out, tgt)
	return out, nil
}

// commit records a resolved outcome and removes defeated targets.
// Caller must hold m.mu.
func (m *Match) commit(out combat.Outcome, tgt *unit.State) {
	for _, line := range out.Log {
		m.record(fmt.Sprintf("turn %d: %s", m.turn, line))
	}
	if out.Success && out.Defeated {
		m.board.Remove(tgt)
		delete(m.units, tgt.ID())
		m.logger.Debug("unit defeated",
			zap.String("match_id", m.id),
			zap.String("unit_id", tgt.ID()),
		)
	}
}

// EndTurn flips the active side, advancing the turn counter when play
// returns to the north side, and resets the turn flags of every unit on the
// newly active side.
func (m *Match) EndTurn() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.activeSide = m.activeSide.Opponent()
	if m.activeSide == board.SideNorth {
		m.turn++
	}
	for _, u := range m.units {
		if u.Side() == m.activeSide {
			u.ResetTurnFlags()
		}
	}
	m.record(fmt.Sprintf("turn %d: %s to act", m.turn, m.activeSide))
}

// Winner returns the winning side once the opponent has no surviving units.
// The second return is false while both sides still have units.
func (m *Match) Winner() (board.Side, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	north, south := 0, 0
	for _, u := range m.units {
		if u.Side() == board.SideNorth {
			north++
		} else {
			south++
		}
	}
	switch {
	case north == 0 && south > 0:
		return board.SideSouth, true
	case south == 0 && north > 0:
		return board.SideNorth, true
	default:
		return board.SideNorth, false
	}
}

// Transcript returns a copy of the ordered human-readable match log.
func (m *Match) Transcript() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.transcript))
	copy(out, m.transcript)
	return out
}

// activeUnit returns the unit if it exists and belongs to the active side.
// Caller must hold m.mu.
func (m *Match) activeUnit(id string) (*unit.State, error) {
	u, ok := m.units[id]
	if !ok {
		return nil, fmt.Errorf("unit %q not found in match %s", id, m.id)
	}
	if u.Side() != m.activeSide {
		return nil, fmt.Errorf("unit %q belongs to %s but it is %s's turn", id, u.Side(), m.activeSide)
	}
	return u, nil
}

// record appends one transcript line. Caller must hold m.mu.
func (m *Match) record(line string) {
	m.transcript = append(m.transcript, line)
}
