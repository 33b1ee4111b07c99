package catalog

import (
	"fmt"
	"path/filepath"
)

// Catalog indexes all loaded content records by ID for lookup during match
// setup. It is read-only after Load; all methods are safe for concurrent use.
type Catalog struct {
	species   map[string]*SpeciesDef
	roles     map[string]*RoleDef
	equipment map[string]*EquipmentDef
	actions   map[string]*ActionDef
}

// Load reads the species/, roles/, equipment/, and actions/ subdirectories of
// root and indexes every record.
//
// Precondition: root must contain the four content subdirectories.
// Postcondition: Returns a fully indexed Catalog, or an error naming the
// first offending file. Duplicate IDs within one record kind are an error.
func Load(root string) (*Catalog, error) {
	c := &Catalog{
		species:   make(map[string]*SpeciesDef),
		roles:     make(map[string]*RoleDef),
		equipment: make(map[string]*EquipmentDef),
		actions:   make(map[string]*ActionDef),
	}

	species, err := LoadSpecies(filepath.Join(root, "species"))
	if err != nil {
		return nil, fmt.Errorf("loading species: %w", err)
	}
	for _, s := range species {
		if _, dup := c.species[s.ID]; dup {
			return nil, fmt.Errorf("duplicate species ID %q", s.ID)
		}
		c.species[s.ID] = s
	}

	roles, err := LoadRoles(filepath.Join(root, "roles"))
	if err != nil {
		return nil, fmt.Errorf("loading roles: %w", err)
	}
	for _, r := range roles {
		if _, dup := c.roles[r.ID]; dup {
			return nil, fmt.Errorf("duplicate role ID %q", r.ID)
		}
		c.roles[r.ID] = r
	}

	equipment, err := LoadEquipment(filepath.Join(root, "equipment"))
	if err != nil {
		return nil, fmt.Errorf("loading equipment: %w", err)
	}
	for _, e := range equipment {
		if _, dup := c.equipment[e.ID]; dup {
			return nil, fmt.Errorf("duplicate equipment ID %q", e.ID)
		}
		c.equipment[e.ID] = e
	}

	actions, err := LoadActions(filepath.Join(root, "actions"))
	if err != nil {
		return nil, fmt.Errorf("loading actions: %w", err)
	}
	for _, a := range actions {
		if _, dup := c.actions[a.ID]; dup {
			return nil, fmt.Errorf("duplicate action ID %q", a.ID)
		}
		c.actions[a.ID] = a
	}

	return c, nil
}

// Species returns the SpeciesDef for id, if present.
func (c *Catalog) Species(id string) (*SpeciesDef, bool) {
	s, ok := c.species[id]
	return s, ok
}

// Role returns the RoleDef for id, if present.
func (c *Catalog) Role(id string) (*RoleDef, bool) {
	r, ok := c.roles[id]
	return r, ok
}

// Equipment returns the EquipmentDef for id, if present.
func (c *Catalog) Equipment(id string) (*EquipmentDef, bool) {
	e, ok := c.equipment[id]
	return e, ok
}

// Action returns the ActionDef for id, if present.
func (c *Catalog) Action(id string) (*ActionDef, bool) {
	a, ok := c.actions[id]
	return a, ok
}

// Counts returns the number of records loaded per kind, for startup logging.
func (c *Catalog) Counts() (species, roles, equipment, actions int) {
	return len(c.species), len(c.roles), len(c.equipment), len(c.actions)
}
