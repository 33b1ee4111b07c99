package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/catalog"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadSpecies_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "gignen.yaml"), `
id: gignen
name: "Gignen"
description: "Adaptable summons with balanced growth."
base_stats:
  str: 10
  end: 11
  def: 9
  int: 8
  spi: 8
  mdf: 8
  spd: 12
  acc: 10
  lck: 11
growth:
  str: 0.8
  end: 0.7
  spd: 0.9
equipment_slots:
  - weapon
  - armor
`)
	defs, err := catalog.LoadSpecies(dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	s := defs[0]
	assert.Equal(t, "gignen", s.ID)
	assert.Equal(t, 10, s.BaseStats.STR)
	assert.Equal(t, 11, s.BaseStats.END)
	assert.InDelta(t, 0.8, s.Growth[stats.Strength], 1e-9)
	assert.Equal(t, []string{"weapon", "armor"}, s.EquipmentSlots)
}

func TestLoadSpecies_RejectsNegativeGrowth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), `
id: bad
name: "Bad"
growth:
  str: -0.5
`)
	_, err := catalog.LoadSpecies(dir)
	assert.Error(t, err)
}

func TestLoadRoles_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "warrior.yaml"), `
id: warrior
name: "Warrior"
family: fighter
modifiers:
  str: 0.25
  def: 0.15
  int: -0.1
`)
	defs, err := catalog.LoadRoles(dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	r := defs[0]
	assert.Equal(t, "warrior", r.ID)
	assert.Equal(t, "fighter", r.Family)
	assert.InDelta(t, 0.25, r.Modifiers[stats.Strength], 1e-9)
	assert.InDelta(t, -0.1, r.Modifiers[stats.Intelligence], 1e-9)
}

func TestLoadRoles_RejectsUnknownAttribute(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), `
id: bad
name: "Bad"
family: fighter
modifiers:
  chr: 0.25
`)
	_, err := catalog.LoadRoles(dir)
	assert.Error(t, err)
}

func TestLoadEquipment_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shortbow.yaml"), `
id: shortbow
name: "Shortbow"
slot: weapon
power: 30
range: 3
style: bow
bonuses:
  acc: 2
`)
	defs, err := catalog.LoadEquipment(dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	e := defs[0]
	assert.Equal(t, "shortbow", e.ID)
	assert.True(t, e.IsWeapon())
	assert.Equal(t, 3, e.Range)
	assert.Equal(t, catalog.StyleBow, e.Style)
	assert.Equal(t, 2, e.Bonuses[stats.Accuracy])
}

func TestLoadEquipment_WeaponNeedsRange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), `
id: bad
name: "Bad"
slot: weapon
style: physical
range: 0
`)
	_, err := catalog.LoadEquipment(dir)
	assert.Error(t, err)
}

func TestLoadActions_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "fireball.yaml"), `
id: fireball
name: "Fireball"
effect: damage
style: magical
power: 45
base_accuracy: 90
range: 4
`)
	defs, err := catalog.LoadActions(dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	a := defs[0]
	assert.Equal(t, catalog.EffectDamage, a.Effect)
	assert.Equal(t, catalog.StyleMagical, a.Style)
	assert.Equal(t, 45, a.Power)
	assert.InDelta(t, 90.0, a.BaseAccuracy, 1e-9)
}

func TestLoadActions_RejectsUnknownEffect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), `
id: bad
name: "Bad"
effect: summon_dragon
`)
	_, err := catalog.LoadActions(dir)
	assert.Error(t, err)
}

func TestLoadActions_BuffNeedsDuration(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), `
id: bad
name: "Bad"
effect: buff_weapon_power
power: 20
`)
	_, err := catalog.LoadActions(dir)
	assert.Error(t, err)
}

func TestCatalog_LoadAndLookup(t *testing.T) {
	root := t.TempDir()
	for _, sub := range []string{"species", "roles", "equipment", "actions"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, sub), 0755))
	}
	writeFile(t, filepath.Join(root, "species", "gignen.yaml"), "id: gignen\nname: Gignen\n")
	writeFile(t, filepath.Join(root, "roles", "warrior.yaml"), "id: warrior\nname: Warrior\nfamily: fighter\n")
	writeFile(t, filepath.Join(root, "equipment", "sword.yaml"), "id: sword\nname: Sword\nslot: weapon\npower: 40\nrange: 1\nstyle: physical\n")
	writeFile(t, filepath.Join(root, "actions", "heal.yaml"), "id: heal\nname: Heal\neffect: heal\npower: 30\nbase_accuracy: 100\nrange: 2\n")

	c, err := catalog.Load(root)
	require.NoError(t, err)

	s, ok := c.Species("gignen")
	require.True(t, ok)
	assert.Equal(t, "Gignen", s.Name)
	_, ok = c.Species("missing")
	assert.False(t, ok)

	_, ok = c.Role("warrior")
	assert.True(t, ok)
	e, ok := c.Equipment("sword")
	require.True(t, ok)
	assert.True(t, e.IsWeapon())
	_, ok = c.Action("heal")
	assert.True(t, ok)

	ns, nr, ne, na := c.Counts()
	assert.Equal(t, []int{1, 1, 1, 1}, []int{ns, nr, ne, na})
}

func TestCatalog_DuplicateIDFails(t *testing.T) {
	root := t.TempDir()
	for _, sub := range []string{"species", "roles", "equipment", "actions"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, sub), 0755))
	}
	writeFile(t, filepath.Join(root, "species", "a.yaml"), "id: gignen\nname: Gignen\n")
	writeFile(t, filepath.Join(root, "species", "b.yaml"), "id: gignen\nname: Gignen Again\n")

	_, err := catalog.Load(root)
	assert.Error(t, err)
}

func TestCatalog_MissingDirectoryFails(t *testing.T) {
	_, err := catalog.Load(t.TempDir())
	assert.Error(t, err)
}
