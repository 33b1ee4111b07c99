package catalog

import (
	"errors"
	"fmt"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/stats"
)

// DamageStyle selects which damage formula an attack uses.
type DamageStyle string

const (
	// StylePhysical is a strength-based melee attack.
	StylePhysical DamageStyle = "physical"
	// StyleBow is a ranged attack averaging strength and accuracy.
	StyleBow DamageStyle = "bow"
	// StyleMagical is an intelligence-based attack resisted by magic defense.
	StyleMagical DamageStyle = "magical"
)

// EquipmentDef defines a weapon or gear item: attack power and range, the
// damage style it attacks with, flat stat bonuses, and the slot it occupies.
//
// Precondition: ID, Name, and Slot must be non-empty after loading.
type EquipmentDef struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Slot        string            `yaml:"slot"`
	Power       int               `yaml:"power"`
	Range       int               `yaml:"range"`
	Style       DamageStyle       `yaml:"style"`
	Bonuses     stats.FlatBonuses `yaml:"bonuses"`
}

// IsWeapon reports whether the item can attack (has a damage style).
func (e *EquipmentDef) IsWeapon() bool {
	return e.Style != ""
}

// Validate checks that the EquipmentDef satisfies its invariants.
//
// Precondition: e is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (e *EquipmentDef) Validate() error {
	var errs []error
	if e.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if e.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if e.Slot == "" {
		errs = append(errs, errors.New("Slot must not be empty"))
	}
	if e.Power < 0 {
		errs = append(errs, fmt.Errorf("Power must not be negative, got %d", e.Power))
	}
	if e.Range < 0 {
		errs = append(errs, fmt.Errorf("Range must not be negative, got %d", e.Range))
	}
	switch e.Style {
	case "", StylePhysical, StyleBow, StyleMagical:
	default:
		errs = append(errs, fmt.Errorf("unknown damage style %q", e.Style))
	}
	if e.IsWeapon() && e.Range < 1 {
		errs = append(errs, errors.New("weapon Range must be >= 1"))
	}
	for a := range e.Bonuses {
		if !validAttribute(a) {
			errs = append(errs, fmt.Errorf("unknown bonus attribute %q", a))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("equipment %q validation failed: %v", e.ID, errs)
	}
	return nil
}
