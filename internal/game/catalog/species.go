// Package catalog provides definitions and loaders for the immutable content
// records consumed by the combat core: species templates, roles, equipment,
// and action descriptors. Records are value data loaded once per match setup;
// nothing in the engine ever mutates them.
package catalog

import (
	"errors"
	"fmt"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/stats"
)

// SpeciesDef is the base unit template: species base stats, per-level growth
// rates, and the equipment slots the species can use.
//
// Precondition: ID and Name must be non-empty after loading.
type SpeciesDef struct {
	ID             string            `yaml:"id"`
	Name           string            `yaml:"name"`
	Description    string            `yaml:"description"`
	BaseStats      stats.Stats       `yaml:"base_stats"`
	Growth         stats.GrowthRates `yaml:"growth"`
	EquipmentSlots []string          `yaml:"equipment_slots"`
}

// Validate checks that the SpeciesDef satisfies its invariants.
//
// Precondition: s is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (s *SpeciesDef) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if s.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	for _, a := range stats.Attributes {
		if s.BaseStats.Get(a) < 0 {
			errs = append(errs, fmt.Errorf("base stat %s must not be negative", a))
		}
	}
	for a, g := range s.Growth {
		if !validAttribute(a) {
			errs = append(errs, fmt.Errorf("unknown growth attribute %q", a))
		}
		if g < 0 {
			errs = append(errs, fmt.Errorf("growth rate for %s must not be negative", a))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("species %q validation failed: %v", s.ID, errs)
	}
	return nil
}

// validAttribute reports whether a names one of the nine unit attributes.
func validAttribute(a stats.Attribute) bool {
	for _, known := range stats.Attributes {
		if a == known {
			return true
		}
	}
	return false
}
