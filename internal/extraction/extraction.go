// Package extraction resolves one tick of work on a resource into drops.
package extraction

import (
	"math/rand"

	"github.com/vovakirdan/skillquest/internal/catalog"
)

// RandomSource draws uniform integers in the inclusive range [min, max].
type RandomSource interface {
	IntN(min, max int) int
}

// SeededSource is a RandomSource backed by math/rand.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// IntN implements RandomSource.
func (s *SeededSource) IntN(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Container receives successful drops. *inventory.Inventory satisfies it.
type Container interface {
	Add(item catalog.Item) bool
}

// Drop is the outcome of one successful roll that fit in the inventory.
type Drop struct {
	Item   catalog.Item
	Rarity catalog.Rarity
	Exp    int
}

// Engine rolls drop tables.
type Engine struct {
	rnd RandomSource
}

// NewEngine returns an engine drawing from rnd.
func NewEngine(rnd RandomSource) *Engine {
	return &Engine{rnd: rnd}
}

// ResolveTick rolls every drop entry of res once, in declaration order.
// An entry with rate d succeeds when a draw in [0, d-1] is 0. Successful
// drops are added to dst; a drop that does not fit is lost. A nil
// resource yields no drops.
func (e *Engine) ResolveTick(res *catalog.Resource, dst Container) []Drop {
	if res == nil {
		return nil
	}

	var drops []Drop
	for i := 0; i < res.NumDrops(); i++ {
		entry := res.Drop(i)
		if e.rnd.IntN(0, entry.Rate-1) != 0 {
			continue
		}
		if !dst.Add(entry.Item) {
			continue
		}
		drops = append(drops, Drop{
			Item:   entry.Item,
			Rarity: entry.Rarity(),
			Exp:    entry.Exp,
		})
	}
	return drops
}
