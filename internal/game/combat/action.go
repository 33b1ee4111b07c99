// Package combat implements the action-resolution pipeline for the Summoner's
// Grid combat core: hit and critical rolls, the damage and heal formulas, and
// outcome production. The resolver is a pure function over stat snapshots;
// it never mutates unit state, and callers commit results.
package combat

import "github.com/look-itsaxiom/summoners-grid-sub002/internal/game/catalog"

// Default to-hit bases and caps for the single authoritative hit formula:
// toHit = min(base + acc/10, MaxToHit).
const (
	// DefaultWeaponAccuracy is the to-hit base for weapon attacks.
	DefaultWeaponAccuracy = 90.0
	// DefaultUnarmedAccuracy is the to-hit base for unarmed attacks.
	DefaultUnarmedAccuracy = 85.0
	// MaxToHit caps the to-hit chance so any attack can miss.
	MaxToHit = 95.0
	// CritMultiplier scales damage and healing on a critical.
	CritMultiplier = 1.5
)

// Action is the immutable descriptor the resolver consumes: which effect to
// apply, with what power, accuracy, damage style, and reach.
type Action struct {
	// Name is the display name used in outcome logs.
	Name string
	// Effect selects the resolution branch; interpreted exhaustively.
	Effect catalog.EffectKind
	// Style selects the damage formula for EffectDamage actions.
	Style catalog.DamageStyle
	// Power is the percentage power bonus folded into the formula.
	Power int
	// BaseAccuracy is the flat to-hit base; 0 selects the default for the
	// action (weapon, unarmed, or auto-hit for buffs).
	BaseAccuracy float64
	// Range is the maximum Chebyshev reach; 0 disables range validation.
	Range int
	// Unarmed selects the fallback basic-attack formula.
	Unarmed bool
	// Duration is the turn count carried to time-boxed effects.
	Duration int
}

// WeaponAction builds the attack Action for a weapon.
//
// A nil or non-weapon item yields the unarmed fallback (range 1, power 0),
// keeping the resolver total over malformed input.
func WeaponAction(w *catalog.EquipmentDef) Action {
	if w == nil || !w.IsWeapon() {
		return UnarmedAction()
	}
	return Action{
		Name:         w.Name,
		Effect:       catalog.EffectDamage,
		Style:        w.Style,
		Power:        w.Power,
		BaseAccuracy: DefaultWeaponAccuracy,
		Range:        w.Range,
	}
}

// UnarmedAction builds the unarmed basic-attack Action: physical, power 0,
// range 1, to-hit base 85.
func UnarmedAction() Action {
	return Action{
		Name:         "unarmed strike",
		Effect:       catalog.EffectDamage,
		Style:        catalog.StylePhysical,
		BaseAccuracy: DefaultUnarmedAccuracy,
		Range:        1,
		Unarmed:      true,
	}
}

// ActionFromDef builds an Action from a catalog action descriptor.
//
// Precondition: def must be non-nil and validated. Panics on nil, signaling
// corrupted catalog data or caller misuse.
func ActionFromDef(def *catalog.ActionDef) Action {
	if def == nil {
		panic("combat: ActionFromDef called with nil def")
	}
	return Action{
		Name:         def.Name,
		Effect:       def.Effect,
		Style:        def.Style,
		Power:        def.Power,
		BaseAccuracy: def.BaseAccuracy,
		Range:        def.Range,
		Duration:     def.Duration,
	}
}

// toHitBase returns the authoritative to-hit base for the action.
func (a Action) toHitBase() float64 {
	if a.BaseAccuracy > 0 {
		return a.BaseAccuracy
	}
	if a.Unarmed {
		return DefaultUnarmedAccuracy
	}
	switch a.Effect {
	case catalog.EffectDamage:
		return DefaultWeaponAccuracy
	default:
		// Heals and buffs without an explicit accuracy land automatically.
		return 100
	}
}
