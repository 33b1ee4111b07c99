// Package stats defines the unit attribute block and the pure derived-stat
// model for the Summoner's Grid combat core.
package stats

import "math"

// Attribute names one of the nine unit attributes.
type Attribute string

const (
	Strength     Attribute = "str"
	Endurance    Attribute = "end"
	Defense      Attribute = "def"
	Intelligence Attribute = "int"
	Spirit       Attribute = "spi"
	MagicDefense Attribute = "mdf"
	Speed        Attribute = "spd"
	Accuracy     Attribute = "acc"
	Luck         Attribute = "lck"
)

// Attributes lists every attribute in canonical order.
var Attributes = []Attribute{
	Strength, Endurance, Defense, Intelligence, Spirit,
	MagicDefense, Speed, Accuracy, Luck,
}

// Stats holds one value per attribute.
//
// Invariant: every field is >= 0 for any Stats produced by Compute.
type Stats struct {
	STR int `yaml:"str"`
	END int `yaml:"end"`
	DEF int `yaml:"def"`
	INT int `yaml:"int"`
	SPI int `yaml:"spi"`
	MDF int `yaml:"mdf"`
	SPD int `yaml:"spd"`
	ACC int `yaml:"acc"`
	LCK int `yaml:"lck"`
}

// Get returns the value for attribute a.
//
// Precondition: a is one of the nine named attributes. Panics otherwise,
// signaling corrupted catalog data or caller misuse.
func (s Stats) Get(a Attribute) int {
	switch a {
	case Strength:
		return s.STR
	case Endurance:
		return s.END
	case Defense:
		return s.DEF
	case Intelligence:
		return s.INT
	case Spirit:
		return s.SPI
	case MagicDefense:
		return s.MDF
	case Speed:
		return s.SPD
	case Accuracy:
		return s.ACC
	case Luck:
		return s.LCK
	default:
		panic("stats: unknown attribute " + string(a))
	}
}

// set returns a copy of s with attribute a replaced by v.
func (s Stats) set(a Attribute, v int) Stats {
	switch a {
	case Strength:
		s.STR = v
	case Endurance:
		s.END = v
	case Defense:
		s.DEF = v
	case Intelligence:
		s.INT = v
	case Spirit:
		s.SPI = v
	case MagicDefense:
		s.MDF = v
	case Speed:
		s.SPD = v
	case Accuracy:
		s.ACC = v
	case Luck:
		s.LCK = v
	default:
		panic("stats: unknown attribute " + string(a))
	}
	return s
}

// GrowthRates holds per-attribute fractional per-level gains.
// Missing attributes grow at rate 0.
type GrowthRates map[Attribute]float64

// RoleModifiers holds per-attribute multiplicative fractions applied after
// growth (e.g. 0.25 means +25%). Missing attributes are unmodified.
type RoleModifiers map[Attribute]float64

// FlatBonuses holds per-attribute flat additions, applied last.
type FlatBonuses map[Attribute]int

// Compute derives the full current stat block.
//
// For each attribute a:
//
//	value = floor((base_a + floor(level*growth_a)) * (1 + role_a)) + Σ bonus_a + modifier_a
//
// floored exactly once after growth and role, with flat equipment bonuses and
// active time-boxed modifiers added afterwards. The result is clamped at 0
// per attribute. Always recomputes wholesale; never patches incrementally.
//
// Precondition: level >= 0. Panics with "stats: negative level" otherwise.
// Postcondition: identical inputs yield identical Stats; every field >= 0.
func Compute(base Stats, growth GrowthRates, level int, role RoleModifiers, bonuses []FlatBonuses, mods *ModifierSet) Stats {
	if level < 0 {
		panic("stats: negative level")
	}
	var out Stats
	for _, a := range Attributes {
		grown := float64(base.Get(a)) + math.Floor(float64(level)*growth[a])
		v := int(math.Floor(grown * (1 + role[a])))
		for _, b := range bonuses {
			v += b[a]
		}
		if mods != nil {
			v += mods.Total(a)
		}
		if v < 0 {
			v = 0
		}
		out = out.set(a, v)
	}
	return out
}

// MaxHP returns the hit point ceiling for a stat block: floor(50 + end^1.5).
//
// Postcondition: Returns >= 50.
func MaxHP(s Stats) int {
	return int(math.Floor(50 + math.Pow(float64(s.END), 1.5)))
}

// MovementSpeed returns the movement points available per turn:
// max(0, 2 + floor((spd-10)/5)), using floor division for sub-10 speeds.
//
// Postcondition: Returns >= 0.
func MovementSpeed(s Stats) int {
	v := 2 + floorDiv(s.SPD-10, 5)
	if v < 0 {
		return 0
	}
	return v
}

// floorDiv computes floor(a/b) for positive b, rounding toward negative
// infinity rather than truncating toward zero.
func floorDiv(a, b int) int {
	if a < 0 {
		return -((-a + b - 1) / b)
	}
	return a / b
}
