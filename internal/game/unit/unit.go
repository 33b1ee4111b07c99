// Package unit implements the mutable battle-state aggregate for one summoned
// unit: derived stats, hit points, board position, per-turn flags, and the
// orchestration of stat recomputes, movement, and combat resolution.
package unit

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/board"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/catalog"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/combat"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/stats"
)

// powerBuff is one active time-boxed weapon power bonus.
type powerBuff struct {
	value int
	turns int // -1 = rest of match
}

// State is one unit's mutable battle state. Template, role, and equipment
// records are immutable catalog values; State holds references and never
// writes through them.
//
// Invariant: currentHP is always in [0, maxHP]; maxHP and the stat block are
// recomputed wholesale on every stat-affecting change.
//
// State is not safe for concurrent use; the owning match serialises access.
type State struct {
	id    string
	name  string
	side  board.Side
	pos   board.Position
	level int

	species   *catalog.SpeciesDef
	role      *catalog.RoleDef
	equipment []*catalog.EquipmentDef

	stats     stats.Stats
	currentHP int
	maxHP     int

	hasAttacked  bool
	hasMoved     bool
	movementUsed int

	modifiers  *stats.ModifierSet
	powerBuffs []powerBuff
}

// Summon creates a unit at match setup from its immutable catalog records.
//
// Precondition: species and role must be non-nil; level >= 1. Panics
// otherwise, signaling corrupted catalog data or caller misuse.
// Postcondition: the unit starts at full hp with fresh turn flags.
func Summon(species *catalog.SpeciesDef, role *catalog.RoleDef, side board.Side, level int, equipment []*catalog.EquipmentDef) *State {
	if species == nil {
		panic("unit: Summon called with nil species")
	}
	if role == nil {
		panic("unit: Summon called with nil role")
	}
	if level < 1 {
		panic(fmt.Sprintf("unit: Summon called with invalid level %d", level))
	}
	s := &State{
		id:        uuid.NewString(),
		name:      species.Name,
		side:      side,
		level:     level,
		species:   species,
		role:      role,
		equipment: equipment,
		modifiers: stats.NewModifierSet(),
	}
	s.recompute()
	s.currentHP = s.maxHP
	return s
}

// recompute derives the stat block and hp ceiling from scratch, then clamps
// currentHP into the new [0, maxHP] range. Level-up uses its own
// reconciliation on top of this.
func (s *State) recompute() {
	bonuses := make([]stats.FlatBonuses, 0, len(s.equipment))
	for _, e := range s.equipment {
		if e != nil && len(e.Bonuses) > 0 {
			bonuses = append(bonuses, e.Bonuses)
		}
	}
	s.stats = stats.Compute(s.species.BaseStats, s.species.Growth, s.level, s.role.Modifiers, bonuses, s.modifiers)
	s.maxHP = stats.MaxHP(s.stats)
	if s.currentHP > s.maxHP {
		s.currentHP = s.maxHP
	}
}

// ID returns the unit's unique identifier.
func (s *State) ID() string { return s.id }

// Name returns the unit's display name.
func (s *State) Name() string { return s.name }

// Side returns which player owns the unit.
func (s *State) Side() board.Side { return s.side }

// Position returns the unit's current cell.
func (s *State) Position() board.Position { return s.pos }

// SetPosition records the unit's cell. Only the board calls this; use
// MoveTo for gameplay movement.
func (s *State) SetPosition(p board.Position) { s.pos = p }

// Level returns the unit's current level.
func (s *State) Level() int { return s.level }

// Stats returns the current derived stat block.
func (s *State) Stats() stats.Stats { return s.stats }

// CurrentHP returns the unit's current hit points.
func (s *State) CurrentHP() int { return s.currentHP }

// MaxHP returns the unit's hit point ceiling.
func (s *State) MaxHP() int { return s.maxHP }

// IsDefeated reports whether the unit has been reduced to 0 hp.
func (s *State) IsDefeated() bool { return s.currentHP <= 0 }

// HasAttacked reports whether the unit has attacked since the last turn reset.
func (s *State) HasAttacked() bool { return s.hasAttacked }

// HasMoved reports whether the unit has moved since the last turn reset.
func (s *State) HasMoved() bool { return s.hasMoved }

// MovementSpeed returns the unit's full per-turn movement budget.
func (s *State) MovementSpeed() int { return stats.MovementSpeed(s.stats) }

// RemainingMovement returns the movement points left this turn.
//
// Postcondition: Returns >= 0.
func (s *State) RemainingMovement() int {
	rem := s.MovementSpeed() - s.movementUsed
	if rem < 0 {
		return 0
	}
	return rem
}

// Weapon returns the unit's equipped weapon, or nil when fighting unarmed.
func (s *State) Weapon() *catalog.EquipmentDef {
	for _, e := range s.equipment {
		if e != nil && e.IsWeapon() {
			return e
		}
	}
	return nil
}

// AttackRange returns the unit's attack reach: the weapon's range, or 1
// unarmed.
//
// Postcondition: Returns >= 1.
func (s *State) AttackRange() int {
	if w := s.Weapon(); w != nil {
		return w.Range
	}
	return 1
}

// weaponPowerBonus sums the active time-boxed weapon power buffs.
func (s *State) weaponPowerBonus() int {
	total := 0
	for _, b := range s.powerBuffs {
		total += b.value
	}
	return total
}

// AttackAction builds the combat Action for this unit's basic attack: the
// equipped weapon plus any active weapon power buffs, or the unarmed
// fallback.
func (s *State) AttackAction() combat.Action {
	a := combat.WeaponAction(s.Weapon())
	if !a.Unarmed {
		a.Power += s.weaponPowerBonus()
	}
	return a
}

// Snapshot captures the unit's stats and hp for the resolver.
func (s *State) Snapshot() combat.Snapshot {
	return combat.Snapshot{
		Name:      s.name,
		Stats:     s.stats,
		CurrentHP: s.currentHP,
		MaxHP:     s.maxHP,
	}
}

// LevelUp raises the unit one level and recomputes every derived stat.
// Absolute damage taken is preserved across the recompute, not the hp
// fraction, and the unit never drops below 1 hp.
//
// Postcondition: Level() == old level + 1;
// CurrentHP() == max(1, newMaxHP - (oldMaxHP - oldCurrentHP)).
func (s *State) LevelUp() {
	damageTaken := s.maxHP - s.currentHP
	s.level++
	s.recompute()
	hp := s.maxHP - damageTaken
	if hp < 1 {
		hp = 1
	}
	s.currentHP = hp
}

// CanMoveTo reports whether the unit could move to p right now: in bounds,
// unoccupied, and within its remaining movement by Chebyshev distance.
func (s *State) CanMoveTo(b *board.Board, p board.Position) bool {
	if !b.IsValidPosition(p) {
		return false
	}
	if _, occupied := b.UnitAt(p.X, p.Y); occupied {
		return false
	}
	dist := board.Chebyshev(s.pos, p)
	return dist > 0 && dist <= s.RemainingMovement()
}

// MoveTo moves the unit to p, spending Chebyshev-distance movement points.
//
// Returns false with no mutation when the move is invalid.
// Postcondition: on success, RemainingMovement() decreased by the distance
// and HasMoved() is true.
func (s *State) MoveTo(b *board.Board, p board.Position) bool {
	if !s.CanMoveTo(b, p) {
		return false
	}
	cost := board.Chebyshev(s.pos, p)
	if !b.Move(s, p) {
		return false
	}
	s.movementUsed += cost
	s.hasMoved = true
	return true
}

// Attack resolves this unit's basic attack against target and commits the
// outcome. The attack flag is consumed by any resolved attempt, hit or miss;
// a range rejection consumes nothing.
//
// A unit that has already attacked this turn gets a failed Outcome with a
// log line, which is a normal game event, not an error.
//
// Precondition: r and target must be non-nil.
func (s *State) Attack(r *combat.Resolver, target *State) combat.Outcome {
	if s.hasAttacked {
		return combat.Outcome{
			Effect:      catalog.EffectDamage,
			ResultingHP: target.currentHP,
			Log:         []string{fmt.Sprintf("%s has already attacked this turn", s.name)},
		}
	}
	out := r.Resolve(s.AttackAction(), s.Snapshot(), target.Snapshot(), &combat.Positions{
		Attacker: s.pos,
		Target:   target.pos,
	})
	if out.Rejected {
		// The action never started, so the attack is not consumed.
		return out
	}
	s.hasAttacked = true
	target.ApplyOutcome(out)
	return out
}

// Cast resolves a catalog action (spell, heal, buff) against target and
// commits the outcome. Like Attack, it consumes the per-turn attack flag.
//
// Precondition: r, def, and target must be non-nil.
func (s *State) Cast(r *combat.Resolver, def *catalog.ActionDef, target *State) combat.Outcome {
	if s.hasAttacked {
		return combat.Outcome{
			Effect:      def.Effect,
			ResultingHP: target.currentHP,
			Log:         []string{fmt.Sprintf("%s has already acted this turn", s.name)},
		}
	}
	out := r.Resolve(combat.ActionFromDef(def), s.Snapshot(), target.Snapshot(), &combat.Positions{
		Attacker: s.pos,
		Target:   target.pos,
	})
	if out.Rejected {
		return out
	}
	s.hasAttacked = true
	target.ApplyOutcome(out)
	return out
}

// ApplyOutcome commits a resolved outcome onto this unit as the target.
// Effect kinds are matched exhaustively; failed outcomes commit nothing.
func (s *State) ApplyOutcome(out combat.Outcome) {
	if !out.Success {
		return
	}
	switch out.Effect {
	case catalog.EffectDamage, catalog.EffectHeal:
		s.currentHP = out.ResultingHP
	case catalog.EffectBuffWeaponPower:
		s.powerBuffs = append(s.powerBuffs, powerBuff{value: out.Amount, turns: out.Duration})
	case catalog.EffectRestoreMovement:
		s.movementUsed -= out.Amount
		if s.movementUsed < 0 {
			s.movementUsed = 0
		}
	default:
		panic("unit: unknown effect kind " + string(out.Effect))
	}
}

// TakeDamage reduces hp by amount, flooring at 0.
//
// Precondition: amount >= 0. Panics otherwise.
// Postcondition: CurrentHP() >= 0.
func (s *State) TakeDamage(amount int) {
	if amount < 0 {
		panic("unit: TakeDamage called with negative amount")
	}
	s.currentHP -= amount
	if s.currentHP < 0 {
		s.currentHP = 0
	}
}

// Heal restores hp by amount, capped at max hp.
//
// Precondition: amount >= 0. Panics otherwise.
// Postcondition: CurrentHP() <= MaxHP().
func (s *State) Heal(amount int) {
	if amount < 0 {
		panic("unit: Heal called with negative amount")
	}
	s.currentHP += amount
	if s.currentHP > s.maxHP {
		s.currentHP = s.maxHP
	}
}

// AddModifier attaches a time-boxed stat modifier and recomputes the stat
// block with it folded in.
func (s *State) AddModifier(m stats.Modifier) {
	s.modifiers.Apply(m)
	s.recompute()
}

// ResetTurnFlags starts a fresh turn for the unit: clears the attack and
// movement flags, restores the movement budget, and expires one turn from
// every time-boxed modifier and buff. Owned by the external turn controller.
func (s *State) ResetTurnFlags() {
	s.hasAttacked = false
	s.hasMoved = false
	s.movementUsed = 0

	expired := s.modifiers.Tick()
	kept := s.powerBuffs[:0]
	for _, b := range s.powerBuffs {
		if b.turns < 0 {
			kept = append(kept, b)
			continue
		}
		b.turns--
		if b.turns > 0 {
			kept = append(kept, b)
		}
	}
	s.powerBuffs = kept
	if len(expired) > 0 {
		s.recompute()
	}
}
