package catalog

import "strings"

// ItemID identifies an item kind, e.g. "copper_ore".
type ItemID string

// ResourceID identifies a resource node, e.g. "copper".
type ResourceID string

// Item is an immutable item definition. Asset is a sprite reference the
// terminal front-end ignores.
type Item struct {
	ID    ItemID
	Name  string
	Asset string
}

// IsZero reports whether the item is the empty value.
func (i Item) IsZero() bool {
	return i.ID == ""
}

// DropEntry is one possible drop of a resource. Rate is the denominator d
// of a 1/d chance per tick.
type DropEntry struct {
	Item  Item
	Level int // Minimum skill level required
	Exp   int // Experience awarded when the drop lands
	Rate  int
}

// Rarity returns the display tier derived from the drop rate.
func (d DropEntry) Rarity() Rarity {
	return RarityFromDropRate(d.Rate)
}

// Resource is a static resource node with an ordered drop table.
type Resource struct {
	ID       ResourceID
	Name     string
	Asset    string
	Skill    Skill
	drops    []DropEntry
	minLevel int
}

// Drops returns a copy of the drop table in declaration order.
func (r *Resource) Drops() []DropEntry {
	out := make([]DropEntry, len(r.drops))
	copy(out, r.drops)
	return out
}

// NumDrops returns the number of drop entries.
func (r *Resource) NumDrops() int {
	return len(r.drops)
}

// Drop returns the i-th drop entry.
func (r *Resource) Drop(i int) DropEntry {
	return r.drops[i]
}

// MinLevel returns the lowest required level over all drop entries.
// It is computed once when the catalog is built.
func (r *Resource) MinLevel() int {
	return r.minLevel
}

// Skill identifies a trainable skill.
type Skill int

const (
	SkillMining Skill = iota
	SkillHealth
)

type skillDef struct {
	name  string
	floor int
}

var skillDefs = [...]skillDef{
	SkillMining: {name: "mining", floor: 1},
	SkillHealth: {name: "health", floor: 10},
}

// AllSkills returns every skill in display order.
func AllSkills() []Skill {
	out := make([]Skill, len(skillDefs))
	for i := range skillDefs {
		out[i] = Skill(i)
	}
	return out
}

// String returns the lower-case skill name.
func (s Skill) String() string {
	if s < 0 || int(s) >= len(skillDefs) {
		return "unknown"
	}
	return skillDefs[s].name
}

// Floor returns the level a fresh character starts the skill at.
func (s Skill) Floor() int {
	if s < 0 || int(s) >= len(skillDefs) {
		return 1
	}
	return skillDefs[s].floor
}

// ParseSkill looks a skill up by name, case-insensitively.
func ParseSkill(name string) (Skill, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, def := range skillDefs {
		if def.name == name {
			return Skill(i), true
		}
	}
	return 0, false
}

// Action is what the player is currently doing.
type Action int

const (
	ActionIdle Action = iota
	ActionMine
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionMine:
		return "mining"
	default:
		return "unknown"
	}
}

// actionSkills is the single action<->skill mapping. Skills without an
// action (health) are trained indirectly.
var actionSkills = []struct {
	action Action
	skill  Skill
}{
	{ActionMine, SkillMining},
}

// SkillForAction returns the skill trained by an action.
func SkillForAction(a Action) (Skill, bool) {
	for _, m := range actionSkills {
		if m.action == a {
			return m.skill, true
		}
	}
	return 0, false
}

// ActionForSkill returns the action that trains a skill.
func ActionForSkill(s Skill) (Action, bool) {
	for _, m := range actionSkills {
		if m.skill == s {
			return m.action, true
		}
	}
	return ActionIdle, false
}
