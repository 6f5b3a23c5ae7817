// Package catalog holds the static game data: items, resource nodes with
// their drop tables, and per-skill experience curves. A Catalog is built
// once, validated, and read-only afterwards.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultCurve is the curve name every skill uses unless told otherwise.
const DefaultCurve = "default"

// MaxDropExp bounds the experience a single drop may award.
const MaxDropExp = 1_000_000

// ErrInvalidCatalog is wrapped by every validation failure from Build.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the validated, immutable game data.
type Catalog struct {
	items      []Item
	itemByKey  map[string]int
	resources  []*Resource
	resByKey   map[string]*Resource
	skillCurve map[Skill]Curve
}

// Items returns all items in declaration order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Resources returns all resources in declaration order.
func (c *Catalog) Resources() []*Resource {
	out := make([]*Resource, len(c.resources))
	copy(out, c.resources)
	return out
}

// Item returns the item with the given ID.
func (c *Catalog) Item(id ItemID) (Item, bool) {
	idx, ok := c.itemByKey[key(string(id))]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// ItemByName resolves an item by ID or display name, case-insensitively.
func (c *Catalog) ItemByName(name string) (Item, bool) {
	idx, ok := c.itemByKey[key(name)]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// ResourceByName resolves a resource by ID or display name, case-insensitively.
func (c *Catalog) ResourceByName(name string) (*Resource, bool) {
	r, ok := c.resByKey[key(name)]
	return r, ok
}

// Curve returns the experience curve used by a skill.
func (c *Catalog) Curve(s Skill) Curve {
	return c.skillCurve[s]
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DropSpec declares a drop entry by item ID, resolved during Build.
type DropSpec struct {
	Item  ItemID
	Level int
	Exp   int
	Rate  int
}

type resourceSpec struct {
	id    ResourceID
	name  string
	asset string
	skill Skill
	drops []DropSpec
}

// Builder accumulates catalog definitions. Problems are collected and
// reported together by Build.
type Builder struct {
	items      []Item
	resources  []resourceSpec
	curves     map[string][]int
	skillCurve map[Skill]string
	errs       []error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		curves:     make(map[string][]int),
		skillCurve: make(map[Skill]string),
	}
}

func (b *Builder) fail(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf("catalog: %w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...)))
}

// AddItem declares an item.
func (b *Builder) AddItem(id ItemID, name, asset string) *Builder {
	if id == "" {
		b.fail("item with empty id")
		return b
	}
	if name == "" {
		name = string(id)
	}
	b.items = append(b.items, Item{ID: id, Name: name, Asset: asset})
	return b
}

// AddCurve declares a named threshold table.
func (b *Builder) AddCurve(name string, thresholds ...int) *Builder {
	if _, dup := b.curves[name]; dup {
		b.fail("duplicate curve %q", name)
		return b
	}
	b.curves[name] = append([]int(nil), thresholds...)
	return b
}

// UseCurve assigns a named curve to a skill.
func (b *Builder) UseCurve(s Skill, curve string) *Builder {
	b.skillCurve[s] = curve
	return b
}

// AddResource declares a resource node trained by skill.
func (b *Builder) AddResource(id ResourceID, name, asset string, skill Skill, drops ...DropSpec) *Builder {
	if id == "" {
		b.fail("resource with empty id")
		return b
	}
	if name == "" {
		name = string(id)
	}
	b.resources = append(b.resources, resourceSpec{
		id:    id,
		name:  name,
		asset: asset,
		skill: skill,
		drops: append([]DropSpec(nil), drops...),
	})
	return b
}

// Build validates the definitions and returns the catalog.
func (b *Builder) Build() (*Catalog, error) {
	cat := &Catalog{
		itemByKey:  make(map[string]int),
		resByKey:   make(map[string]*Resource),
		skillCurve: make(map[Skill]Curve),
	}

	curves := b.buildCurves()

	for _, s := range AllSkills() {
		name, ok := b.skillCurve[s]
		if !ok {
			name = DefaultCurve
		}
		cv, ok := curves[name]
		if !ok {
			b.fail("skill %s uses unknown curve %q", s, name)
			continue
		}
		if s.Floor() > cv.MaxLevel() {
			b.fail("skill %s starts at level %d but curve %q stops at %d", s, s.Floor(), name, cv.MaxLevel())
		}
		cat.skillCurve[s] = cv
	}

	for _, it := range b.items {
		if b.claim(cat.itemByKey, "item", string(it.ID), it.Name, len(cat.items)) {
			cat.items = append(cat.items, it)
		}
	}

	resIdx := make(map[string]int)
	for _, spec := range b.resources {
		res, ok := b.buildResource(cat, spec)
		if !ok {
			continue
		}
		if b.claim(resIdx, "resource", string(res.ID), res.Name, len(cat.resources)) {
			cat.resources = append(cat.resources, res)
			cat.resByKey[key(string(res.ID))] = res
			cat.resByKey[key(res.Name)] = res
		}
	}

	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return cat, nil
}

func (b *Builder) buildCurves() map[string]Curve {
	names := make([]string, 0, len(b.curves))
	for name := range b.curves {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]Curve, len(names))
	for _, name := range names {
		th := b.curves[name]
		if len(th) == 0 {
			b.fail("curve %q is empty", name)
			continue
		}
		if th[0] != 0 {
			b.fail("curve %q must start at 0, got %d", name, th[0])
			continue
		}
		valid := true
		for i := 1; i < len(th); i++ {
			if th[i] < th[i-1] {
				b.fail("curve %q decreases at level %d", name, i+1)
				valid = false
				break
			}
		}
		if valid {
			out[name] = Curve{name: name, thresholds: th}
		}
	}
	return out
}

// claim registers id and name under idx, rejecting collisions.
func (b *Builder) claim(idx map[string]int, kind, id, name string, pos int) bool {
	if _, dup := idx[key(id)]; dup {
		b.fail("duplicate %s %q", kind, id)
		return false
	}
	if other, dup := idx[key(name)]; dup && other != pos {
		b.fail("%s %q: name %q already in use", kind, id, name)
		return false
	}
	idx[key(id)] = pos
	idx[key(name)] = pos
	return true
}

func (b *Builder) buildResource(cat *Catalog, spec resourceSpec) (*Resource, bool) {
	if len(spec.drops) == 0 {
		b.fail("resource %q has no drops", spec.id)
		return nil, false
	}

	res := &Resource{
		ID:    spec.id,
		Name:  spec.name,
		Asset: spec.asset,
		Skill: spec.skill,
		drops: make([]DropEntry, 0, len(spec.drops)),
	}

	ok := true
	for i, d := range spec.drops {
		it, found := cat.Item(d.Item)
		switch {
		case !found:
			b.fail("resource %q drop %d: unknown item %q", spec.id, i, d.Item)
			ok = false
		case d.Rate < 1:
			b.fail("resource %q drop %d: rate must be at least 1, got %d", spec.id, i, d.Rate)
			ok = false
		case d.Level < 1:
			b.fail("resource %q drop %d: level must be at least 1, got %d", spec.id, i, d.Level)
			ok = false
		case d.Exp < 0:
			b.fail("resource %q drop %d: negative experience %d", spec.id, i, d.Exp)
			ok = false
		case d.Exp > MaxDropExp:
			b.fail("resource %q drop %d: experience %d is above %d", spec.id, i, d.Exp, MaxDropExp)
			ok = false
		default:
			res.drops = append(res.drops, DropEntry{Item: it, Level: d.Level, Exp: d.Exp, Rate: d.Rate})
		}
	}
	if !ok {
		return nil, false
	}

	res.minLevel = res.drops[0].Level
	for _, d := range res.drops[1:] {
		if d.Level < res.minLevel {
			res.minLevel = d.Level
		}
	}
	return res, true
}

// Default returns the built-in catalog. It is used when no catalog file
// can be loaded.
func Default() *Catalog {
	cat, err := defaultBuilder().Build()
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in catalog is invalid: %v", err))
	}
	return cat
}

func defaultBuilder() *Builder {
	return NewBuilder().
		AddCurve(DefaultCurve, DefaultThresholds...).
		AddItem("stone", "stone", "items/stone.png").
		AddItem("stick", "stick", "items/stick.png").
		AddItem("copper_ore", "copper ore", "items/copper_ore.png").
		AddItem("tin_ore", "tin ore", "items/tin_ore.png").
		AddItem("iron_ore", "iron ore", "items/iron_ore.png").
		AddItem("gold_ore", "gold ore", "items/gold_ore.png").
		AddItem("uncut_sapphire", "uncut sapphire", "items/uncut_sapphire.png").
		AddResource("ground", "ground", "", SkillMining,
			DropSpec{Item: "stone", Level: 1, Exp: 1, Rate: 1},
			DropSpec{Item: "stick", Level: 1, Exp: 2, Rate: 8},
		).
		AddResource("copper", "copper", "", SkillMining,
			DropSpec{Item: "copper_ore", Level: 1, Exp: 4, Rate: 5},
			DropSpec{Item: "stone", Level: 1, Exp: 1, Rate: 40},
		).
		AddResource("tin", "tin", "", SkillMining,
			DropSpec{Item: "tin_ore", Level: 1, Exp: 4, Rate: 5},
		).
		AddResource("iron", "iron", "", SkillMining,
			DropSpec{Item: "iron_ore", Level: 10, Exp: 9, Rate: 8},
			DropSpec{Item: "stone", Level: 10, Exp: 1, Rate: 40},
		).
		AddResource("gold", "gold", "", SkillMining,
			DropSpec{Item: "gold_ore", Level: 20, Exp: 18, Rate: 20},
			DropSpec{Item: "uncut_sapphire", Level: 20, Exp: 60, Rate: 512},
		)
}
