package combat

import (
	"fmt"
	"math"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/board"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/catalog"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/dice"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/stats"
)

// Snapshot is the immutable view of one unit the resolver consumes. Taking
// snapshots instead of live units keeps resolution replayable and free of
// side effects.
type Snapshot struct {
	Name      string
	Stats     stats.Stats
	CurrentHP int
	MaxHP     int
}

// Positions carries the optional attacker/target cells for range validation.
// A nil *Positions skips the range stage.
type Positions struct {
	Attacker board.Position
	Target   board.Position
}

// Outcome is the value object a Resolve call produces. The caller applies it
// onto unit state; the resolver itself mutates nothing.
type Outcome struct {
	// Success is false when the action was rejected (out of range) or the
	// hit roll missed. A failed action is a normal game event, not an error.
	Success bool
	// Rejected is true when target validation failed and the action never
	// started (as opposed to an attempted miss).
	Rejected bool
	// Hit reports the hit-roll result.
	Hit bool
	// Critical reports the critical-roll result (only meaningful on a hit).
	Critical bool
	// Effect is the action's effect kind, echoed for the caller's exhaustive
	// application switch.
	Effect catalog.EffectKind
	// Amount is the non-negative damage dealt, hp healed, or effect
	// magnitude. Healing semantics are carried by Effect, never by sign.
	Amount int
	// Duration is the turn count for time-boxed effects.
	Duration int
	// ResultingHP is the target's hp after applying the outcome.
	ResultingHP int
	// Defeated is true when ResultingHP reached 0.
	Defeated bool
	// Log holds one human-readable line per pipeline stage, for display and
	// audit only, never for control flow.
	Log []string
}

// Resolver turns an Action plus attacker/target snapshots into an Outcome.
// Each Resolver owns exactly one randomness Source for its lifetime; use a
// seeded source for replayable matches and a crypto source otherwise.
type Resolver struct {
	src dice.Source
}

// NewResolver creates a Resolver drawing from src.
//
// Precondition: src must be non-nil. Panics otherwise.
func NewResolver(src dice.Source) *Resolver {
	if src == nil {
		panic("combat: NewResolver requires a non-nil source")
	}
	return &Resolver{src: src}
}

// Resolve runs the five-stage pipeline: range validation, hit roll, critical
// roll, amount computation, and effect application. Stages short-circuit to a
// terminal Outcome; a miss or range rejection leaves the target's hp
// unchanged with Success=false.
//
// Precondition: target.MaxHP >= 1 for damage/heal effects.
// Postcondition: Outcome.ResultingHP is in [0, target.MaxHP]; the Outcome's
// log has one line per executed stage.
func (r *Resolver) Resolve(a Action, attacker Snapshot, target Snapshot, pos *Positions) Outcome {
	out := Outcome{
		Effect:      a.Effect,
		Duration:    a.Duration,
		ResultingHP: target.CurrentHP,
	}

	// Stage 1: target validation.
	if pos != nil && a.Range > 0 {
		d := board.Chebyshev(pos.Attacker, pos.Target)
		if d > a.Range {
			out.Rejected = true
			out.Log = append(out.Log, fmt.Sprintf(
				"%s cannot reach %s: distance %d exceeds range %d",
				attacker.Name, target.Name, d, a.Range))
			return out
		}
		out.Log = append(out.Log, fmt.Sprintf(
			"%s targets %s at distance %d (range %d)",
			attacker.Name, target.Name, d, a.Range))
	}

	// Stage 2: hit roll. Actions with a base at or above 100 (self-buffs,
	// default heals) land automatically and draw nothing.
	base := a.toHitBase()
	if base >= 100 {
		out.Hit = true
		out.Log = append(out.Log, fmt.Sprintf("%s lands automatically", a.Name))
	} else {
		toHit := base + float64(attacker.Stats.ACC)/10
		if toHit > MaxToHit {
			toHit = MaxToHit
		}
		// The strict roll < toHit comparison floors the threshold: at
		// toHit 86.2, a roll of 86 misses and 85 hits.
		roll := r.src.Intn(100)
		out.Hit = roll < int(math.Floor(toHit))
		if !out.Hit {
			out.Log = append(out.Log, fmt.Sprintf(
				"%s misses: rolled %d against to-hit %.1f", attacker.Name, roll, toHit))
			return out
		}
		out.Log = append(out.Log, fmt.Sprintf(
			"%s hits: rolled %d against to-hit %.1f", attacker.Name, roll, toHit))
	}

	// Stage 3: critical roll.
	critChance := CritChance(attacker.Stats.LCK)
	critRoll := r.src.Intn(100)
	out.Critical = critRoll < critChance
	if out.Critical {
		out.Log = append(out.Log, fmt.Sprintf(
			"critical! rolled %d under crit chance %d", critRoll, critChance))
	} else {
		out.Log = append(out.Log, fmt.Sprintf(
			"no critical: rolled %d against crit chance %d", critRoll, critChance))
	}

	// Stage 4: amount computation.
	critMult := 1.0
	if out.Critical {
		critMult = CritMultiplier
	}
	switch a.Effect {
	case catalog.EffectDamage:
		out.Amount = damageAmount(a, attacker.Stats, target.Stats, critMult)
		out.Log = append(out.Log, fmt.Sprintf(
			"%s deals %d %s damage", a.Name, out.Amount, damageLabel(a)))
	case catalog.EffectHeal:
		out.Amount = int(math.Floor(float64(attacker.Stats.SPI) * (1 + float64(a.Power)/100) * critMult))
		out.Log = append(out.Log, fmt.Sprintf("%s restores %d hp", a.Name, out.Amount))
	case catalog.EffectBuffWeaponPower:
		out.Amount = a.Power
		out.Log = append(out.Log, fmt.Sprintf(
			"%s grants +%d weapon power for %d turns", a.Name, out.Amount, a.Duration))
	case catalog.EffectRestoreMovement:
		out.Amount = a.Power
		out.Log = append(out.Log, fmt.Sprintf(
			"%s restores %d movement", a.Name, out.Amount))
	default:
		panic("combat: unknown effect kind " + string(a.Effect))
	}

	// Stage 5: effect application, computed over the snapshot. The caller
	// commits ResultingHP and any modifiers back onto the unit.
	switch a.Effect {
	case catalog.EffectDamage:
		out.ResultingHP = clamp(target.CurrentHP-out.Amount, 0, target.MaxHP)
		out.Defeated = out.ResultingHP <= 0
		if out.Defeated {
			out.Log = append(out.Log, fmt.Sprintf("%s is defeated", target.Name))
		} else {
			out.Log = append(out.Log, fmt.Sprintf(
				"%s: %d/%d hp", target.Name, out.ResultingHP, target.MaxHP))
		}
	case catalog.EffectHeal:
		out.ResultingHP = clamp(target.CurrentHP+out.Amount, 0, target.MaxHP)
		out.Log = append(out.Log, fmt.Sprintf(
			"%s: %d/%d hp", target.Name, out.ResultingHP, target.MaxHP))
	}

	out.Success = true
	return out
}

// CritChance returns the critical-hit percentage for a luck value:
// floor(lck * 0.3375 + 1.65).
//
// Postcondition: Returns >= 1 for lck >= 0.
func CritChance(lck int) int {
	return int(math.Floor(float64(lck)*0.3375 + 1.65))
}

// damageAmount evaluates the damage formula for the action's style. The
// defender's resistance is floored at 1 so the attack ratio stays defined.
//
// Unarmed attacks use the fallback formula floor(str * 0.5 * (str/def)) with
// no critical multiplier; the crit roll still happens and is logged, but the
// multiplier is not applied on this path.
func damageAmount(a Action, atk, def stats.Stats, critMult float64) int {
	if a.Unarmed {
		ratio := float64(atk.STR) / float64(atLeast1(def.DEF))
		return int(math.Floor(float64(atk.STR) * 0.5 * ratio))
	}
	power := 1 + float64(a.Power)/100
	switch a.Style {
	case catalog.StylePhysical:
		ratio := float64(atk.STR) / float64(atLeast1(def.DEF))
		return int(math.Floor(float64(atk.STR) * power * ratio * critMult))
	case catalog.StyleBow:
		ratio := float64(atk.STR) / float64(atLeast1(def.DEF))
		avg := float64(atk.STR+atk.ACC) / 2
		return int(math.Floor(avg * power * ratio * critMult))
	case catalog.StyleMagical:
		ratio := float64(atk.INT) / float64(atLeast1(def.MDF))
		return int(math.Floor(float64(atk.INT) * power * ratio * critMult))
	default:
		panic("combat: unknown damage style " + string(a.Style))
	}
}

// damageLabel returns the log label for a damage action's style.
func damageLabel(a Action) string {
	if a.Unarmed {
		return "unarmed"
	}
	return string(a.Style)
}

func atLeast1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
