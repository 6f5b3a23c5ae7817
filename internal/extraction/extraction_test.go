package extraction

import (
	"testing"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/inventory"
)

// scriptedSource replays draws in order and records the requested ranges.
type scriptedSource struct {
	draws  []int
	ranges [][2]int
}

func (s *scriptedSource) IntN(min, max int) int {
	s.ranges = append(s.ranges, [2]int{min, max})
	if len(s.draws) == 0 {
		return max
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.NewBuilder().
		AddCurve(catalog.DefaultCurve, catalog.DefaultThresholds...).
		AddItem("stone", "stone", "").
		AddItem("coal", "coal", "").
		AddItem("gem", "gem", "").
		AddResource("ground", "ground", "", catalog.SkillMining,
			catalog.DropSpec{Item: "stone", Level: 1, Exp: 1, Rate: 1},
		).
		AddResource("seam", "seam", "", catalog.SkillMining,
			catalog.DropSpec{Item: "coal", Level: 1, Exp: 3, Rate: 4},
			catalog.DropSpec{Item: "gem", Level: 1, Exp: 50, Rate: 600},
		).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return cat
}

func TestResolveTickRateOneAlwaysDrops(t *testing.T) {
	cat := testCatalog(t)
	ground, _ := cat.ResourceByName("ground")
	e := NewEngine(NewSeededSource(42))
	inv := inventory.New(20)

	for i := 0; i < 20; i++ {
		drops := e.ResolveTick(ground, inv)
		if len(drops) != 1 {
			t.Fatalf("tick %d: got %d drops, expected 1", i, len(drops))
		}
		if drops[0].Rarity != catalog.RarityAlways || drops[0].Exp != 1 {
			t.Errorf("tick %d: drop = %+v", i, drops[0])
		}
	}
	if !inv.IsFull() {
		t.Error("20 guaranteed drops should fill 20 slots")
	}
}

func TestResolveTickRollsEveryEntryInOrder(t *testing.T) {
	cat := testCatalog(t)
	seam, _ := cat.ResourceByName("seam")

	tests := []struct {
		name  string
		draws []int
		items []catalog.ItemID
	}{
		{"both hit", []int{0, 0}, []catalog.ItemID{"coal", "gem"}},
		{"first only", []int{0, 7}, []catalog.ItemID{"coal"}},
		{"second only", []int{2, 0}, []catalog.ItemID{"gem"}},
		{"miss", []int{1, 1}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptedSource{draws: tc.draws}
			drops := NewEngine(src).ResolveTick(seam, inventory.New(5))

			if len(drops) != len(tc.items) {
				t.Fatalf("got %d drops, expected %d", len(drops), len(tc.items))
			}
			for i, id := range tc.items {
				if drops[i].Item.ID != id {
					t.Errorf("drop %d = %q, expected %q", i, drops[i].Item.ID, id)
				}
			}

			want := [][2]int{{0, 3}, {0, 599}}
			if len(src.ranges) != 2 || src.ranges[0] != want[0] || src.ranges[1] != want[1] {
				t.Errorf("draw ranges = %v, expected %v", src.ranges, want)
			}
		})
	}
}

func TestResolveTickLosesDropsThatDoNotFit(t *testing.T) {
	cat := testCatalog(t)
	seam, _ := cat.ResourceByName("seam")
	inv := inventory.New(1)

	drops := NewEngine(&scriptedSource{draws: []int{0, 0}}).ResolveTick(seam, inv)

	if len(drops) != 1 || drops[0].Item.ID != "coal" {
		t.Fatalf("drops = %+v, expected only coal", drops)
	}
	if inv.Contains("gem") {
		t.Error("gem should be lost when the inventory is full")
	}
}

func TestResolveTickNilResource(t *testing.T) {
	src := &scriptedSource{}
	if drops := NewEngine(src).ResolveTick(nil, inventory.New(1)); drops != nil {
		t.Errorf("nil resource returned %v", drops)
	}
	if len(src.ranges) != 0 {
		t.Error("nil resource should not draw")
	}
}

func TestSeededSourceRange(t *testing.T) {
	src := NewSeededSource(7)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := src.IntN(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("IntN(2, 5) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 values to appear, saw %v", seen)
	}
	if src.IntN(3, 3) != 3 {
		t.Error("degenerate range should return min")
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a, b := NewSeededSource(99), NewSeededSource(99)
	for i := 0; i < 50; i++ {
		if a.IntN(0, 1000) != b.IntN(0, 1000) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}
