package catalog

import (
	"errors"
	"fmt"
)

// EffectKind is the closed set of effect primitives an action can carry.
// Every kind is interpreted by exhaustive matching in the resolver and the
// unit layer; there are no scripted or callback-driven effects.
type EffectKind string

const (
	// EffectDamage reduces the target's hit points.
	EffectDamage EffectKind = "damage"
	// EffectHeal restores the target's hit points.
	EffectHeal EffectKind = "heal"
	// EffectBuffWeaponPower grants a time-boxed weapon power bonus.
	EffectBuffWeaponPower EffectKind = "buff_weapon_power"
	// EffectRestoreMovement refunds the target's movement budget for the turn.
	EffectRestoreMovement EffectKind = "restore_movement"
)

// ActionDef describes one attack, heal, or buff action: what it does, how
// hard it hits, how accurate it is, and how far it reaches.
//
// Precondition: ID, Name, and Effect must be non-empty after loading.
type ActionDef struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Effect      EffectKind  `yaml:"effect"`
	Style       DamageStyle `yaml:"style"` // damage actions only
	Power       int         `yaml:"power"`
	// BaseAccuracy is the flat to-hit base before the attacker's accuracy
	// contribution; 0 means "use the resolver default for the action".
	BaseAccuracy float64 `yaml:"base_accuracy"`
	Range        int     `yaml:"range"`
	// Duration is the turn count for time-boxed effects (buffs); ignored for
	// damage and heal.
	Duration int `yaml:"duration"`
}

// Validate checks that the ActionDef satisfies its invariants.
//
// Precondition: a is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (a *ActionDef) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	switch a.Effect {
	case EffectDamage:
		switch a.Style {
		case StylePhysical, StyleBow, StyleMagical:
		default:
			errs = append(errs, fmt.Errorf("damage action requires a damage style, got %q", a.Style))
		}
	case EffectHeal, EffectRestoreMovement:
	case EffectBuffWeaponPower:
		if a.Duration < 1 {
			errs = append(errs, fmt.Errorf("buff Duration must be >= 1, got %d", a.Duration))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown effect kind %q", a.Effect))
	}
	if a.Power < 0 {
		errs = append(errs, fmt.Errorf("Power must not be negative, got %d", a.Power))
	}
	if a.BaseAccuracy < 0 || a.BaseAccuracy > 100 {
		errs = append(errs, fmt.Errorf("BaseAccuracy must be within [0,100], got %v", a.BaseAccuracy))
	}
	if a.Range < 0 {
		errs = append(errs, fmt.Errorf("Range must not be negative, got %d", a.Range))
	}
	if len(errs) > 0 {
		return fmt.Errorf("action %q validation failed: %v", a.ID, errs)
	}
	return nil
}
