package unit

import "fmt"

// String returns a one-line battle summary, e.g.
// "Gignen [north] lv5 (3,1) 96/96hp". The format is for display only and
// not contractual.
func (s *State) String() string {
	return fmt.Sprintf("%s [%s] lv%d %s %d/%dhp",
		s.name, s.side, s.level, s.pos, s.currentHP, s.maxHP)
}

// StatLine returns the derived stat block as a display string.
func (s *State) StatLine() string {
	st := s.stats
	return fmt.Sprintf("str:%d end:%d def:%d int:%d spi:%d mdf:%d spd:%d acc:%d lck:%d",
		st.STR, st.END, st.DEF, st.INT, st.SPI, st.MDF, st.SPD, st.ACC, st.LCK)
}
