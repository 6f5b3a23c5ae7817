// Package skills tracks per-skill levels and cumulative experience.
package skills

import "github.com/vovakirdan/skillquest/internal/catalog"

// DefaultPartitions is the number of cells in a progress bar.
const DefaultPartitions = 10

type entry struct {
	level int
	exp   int
}

// Set holds the level and experience of every catalog skill.
type Set struct {
	cat        *catalog.Catalog
	entries    []entry
	partitions int
}

// New creates a skill set with every skill at its floor level. Starting
// experience equals the floor's threshold so level and experience agree.
func New(cat *catalog.Catalog) *Set {
	all := catalog.AllSkills()
	s := &Set{
		cat:        cat,
		entries:    make([]entry, len(all)),
		partitions: DefaultPartitions,
	}
	for _, sk := range all {
		floor := sk.Floor()
		s.entries[sk] = entry{level: floor, exp: cat.Curve(sk).Threshold(floor)}
	}
	return s
}

// SetPartitions changes the progress bar resolution. Values below 1 are ignored.
func (s *Set) SetPartitions(n int) {
	if n >= 1 {
		s.partitions = n
	}
}

// Partitions returns the progress bar resolution.
func (s *Set) Partitions() int {
	return s.partitions
}

// Skills returns all tracked skills in display order.
func (s *Set) Skills() []catalog.Skill {
	return catalog.AllSkills()
}

// Level returns the current level of a skill.
func (s *Set) Level(sk catalog.Skill) int {
	return s.entries[sk].level
}

// Experience returns the cumulative experience of a skill.
func (s *Set) Experience(sk catalog.Skill) int {
	return s.entries[sk].exp
}

// HasLevelAtLeast reports whether the skill is at or above required.
func (s *Set) HasLevelAtLeast(sk catalog.Skill, required int) bool {
	return s.entries[sk].level >= required
}

// GainExperience adds amount to the skill and reports whether it leveled.
// A single call advances at most one level, even when the gain crosses
// several thresholds; the remaining levels follow on later gains.
// Non-positive amounts are ignored and the level never passes the last
// one on the curve.
func (s *Set) GainExperience(sk catalog.Skill, amount int) bool {
	if amount <= 0 {
		return false
	}
	e := &s.entries[sk]
	if e.exp > catalog.Unreachable-amount {
		e.exp = catalog.Unreachable
	} else {
		e.exp += amount
	}

	cv := s.cat.Curve(sk)
	if e.level < cv.MaxLevel() && e.exp >= cv.Threshold(e.level+1) {
		e.level++
		return true
	}
	return false
}

// ExperienceToNext returns the experience missing for the next level,
// or 0 when the skill is at the last level of its curve.
func (s *Set) ExperienceToNext(sk catalog.Skill) int {
	e := s.entries[sk]
	cv := s.cat.Curve(sk)
	if e.level >= cv.MaxLevel() {
		return 0
	}
	return max(cv.Threshold(e.level+1)-e.exp, 0)
}

// ProgressFraction quantizes progress within the current level into
// [0, Partitions] cells, rounding up. It is 0 when no experience has been
// earned in the level or the level is the last one on the curve.
func (s *Set) ProgressFraction(sk catalog.Skill) int {
	e := s.entries[sk]
	cv := s.cat.Curve(sk)

	within := e.exp - cv.Threshold(e.level)
	required := 0
	if e.level < cv.MaxLevel() {
		required = cv.Threshold(e.level+1) - cv.Threshold(e.level)
	}
	if within <= 0 || required <= 0 {
		return 0
	}

	// A pending level-up can leave within above required
	p := int((int64(within)*int64(s.partitions) + int64(required) - 1) / int64(required))
	return min(p, s.partitions)
}
