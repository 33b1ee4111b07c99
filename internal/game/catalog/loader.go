package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpecies reads all .yaml files in dir and parses each as a SpeciesDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: every returned def passed Validate, or a non-nil error.
func LoadSpecies(dir string) ([]*SpeciesDef, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*SpeciesDef, 0, len(files))
	for _, path := range files {
		var s SpeciesDef
		if err := loadInto(path, &s); err != nil {
			return nil, err
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defs = append(defs, &s)
	}
	return defs, nil
}

// LoadRoles reads all .yaml files in dir and parses each as a RoleDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: every returned def passed Validate, or a non-nil error.
func LoadRoles(dir string) ([]*RoleDef, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*RoleDef, 0, len(files))
	for _, path := range files {
		var r RoleDef
		if err := loadInto(path, &r); err != nil {
			return nil, err
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defs = append(defs, &r)
	}
	return defs, nil
}

// LoadEquipment reads all .yaml files in dir and parses each as an EquipmentDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: every returned def passed Validate, or a non-nil error.
func LoadEquipment(dir string) ([]*EquipmentDef, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*EquipmentDef, 0, len(files))
	for _, path := range files {
		var e EquipmentDef
		if err := loadInto(path, &e); err != nil {
			return nil, err
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defs = append(defs, &e)
	}
	return defs, nil
}

// LoadActions reads all .yaml files in dir and parses each as an ActionDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: every returned def passed Validate, or a non-nil error.
func LoadActions(dir string) ([]*ActionDef, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*ActionDef, 0, len(files))
	for _, path := range files {
		var a ActionDef
		if err := loadInto(path, &a); err != nil {
			return nil, err
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defs = append(defs, &a)
	}
	return defs, nil
}

// loadInto reads path and unmarshals its YAML into out.
func loadInto(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// yamlFiles returns the paths of all .yaml/.yml files directly inside dir.
func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
