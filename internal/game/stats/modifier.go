package stats

// Modifier is one time-boxed flat stat adjustment applied to a unit, e.g.
// from a card effect. Modifiers are folded into Compute, never written onto
// templates or the derived stat block directly.
type Modifier struct {
	Attribute Attribute
	Value     int // may be negative for debuffs
	// TurnsRemaining is the number of turn boundaries the modifier survives;
	// -1 means it lasts for the rest of the match.
	TurnsRemaining int
}

// ModifierSet tracks the active modifiers on one unit.
// It is not safe for concurrent use; the caller must serialise access.
type ModifierSet struct {
	mods []Modifier
}

// NewModifierSet creates an empty ModifierSet.
func NewModifierSet() *ModifierSet {
	return &ModifierSet{}
}

// Apply adds a modifier to the set. Modifiers stack; applying the same
// adjustment twice doubles its effect.
//
// Precondition: m.TurnsRemaining >= -1 and != 0.
func (s *ModifierSet) Apply(m Modifier) {
	if m.TurnsRemaining == 0 || m.TurnsRemaining < -1 {
		panic("stats: modifier TurnsRemaining must be a positive turn count or -1")
	}
	s.mods = append(s.mods, m)
}

// Total returns the net flat adjustment for attribute a from all active
// modifiers.
func (s *ModifierSet) Total(a Attribute) int {
	total := 0
	for _, m := range s.mods {
		if m.Attribute == a {
			total += m.Value
		}
	}
	return total
}

// Tick decrements every turn-boxed modifier by one turn and removes those
// that expire, returning the expired modifiers. Permanent modifiers
// (TurnsRemaining == -1) are not affected.
//
// Postcondition: no returned modifier remains in the set.
func (s *ModifierSet) Tick() []Modifier {
	var expired []Modifier
	kept := s.mods[:0]
	for _, m := range s.mods {
		if m.TurnsRemaining < 0 {
			kept = append(kept, m)
			continue
		}
		m.TurnsRemaining--
		if m.TurnsRemaining <= 0 {
			expired = append(expired, m)
			continue
		}
		kept = append(kept, m)
	}
	s.mods = kept
	return expired
}

// All returns a copy of the active modifiers.
func (s *ModifierSet) All() []Modifier {
	out := make([]Modifier, len(s.mods))
	copy(out, s.mods)
	return out
}

// Len returns the number of active modifiers.
func (s *ModifierSet) Len() int { return len(s.mods) }
