package catalog

import (
	"errors"
	"fmt"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/stats"
)

// RoleDef defines a per-family multiplicative stat modifier set, applied
// after growth during stat derivation.
//
// Precondition: ID, Name, and Family must be non-empty after loading.
type RoleDef struct {
	ID          string              `yaml:"id"`
	Name        string              `yaml:"name"`
	Family      string              `yaml:"family"`
	Description string              `yaml:"description"`
	Modifiers   stats.RoleModifiers `yaml:"modifiers"`
}

// Validate checks that the RoleDef satisfies its invariants.
//
// Precondition: r is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (r *RoleDef) Validate() error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if r.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if r.Family == "" {
		errs = append(errs, errors.New("Family must not be empty"))
	}
	for a, m := range r.Modifiers {
		if !validAttribute(a) {
			errs = append(errs, fmt.Errorf("unknown modifier attribute %q", a))
		}
		// A -100% modifier would zero the stat; anything below that is a
		// content error.
		if m < -1 {
			errs = append(errs, fmt.Errorf("modifier for %s must be >= -1, got %v", a, m))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("role %q validation failed: %v", r.ID, errs)
	}
	return nil
}
