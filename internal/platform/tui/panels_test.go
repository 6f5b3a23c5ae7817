package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/inventory"
	"github.com/vovakirdan/skillquest/internal/player"
	"github.com/vovakirdan/skillquest/internal/progression"
)

func countRune(s *core.Screen, r rune) int {
	return strings.Count(s.String(), string(r))
}

func TestItemColors(t *testing.T) {
	colors := itemColors(catalog.Default())

	tests := []struct {
		item catalog.ItemID
		want core.Color
	}{
		{"stone", catalog.RarityAlways.Color()}, // d=1 on ground beats d=40 on copper
		{"copper_ore", catalog.RarityCommon.Color()},
		{"uncut_sapphire", catalog.RarityVeryRare.Color()},
	}
	for _, tt := range tests {
		if got := colors[tt.item]; got != tt.want {
			t.Errorf("color of %s = %v, expected %v", tt.item, got, tt.want)
		}
	}
}

func TestDrawInventoryPanel(t *testing.T) {
	cat := catalog.Default()
	p := player.New(cat, player.Options{InventoryCapacity: 12})
	stone, _ := cat.Item("stone")
	ore, _ := cat.Item("copper_ore")
	p.Inventory().Add(stone)
	p.Inventory().Add(stone)
	p.Inventory().Add(ore)

	s := core.NewScreen(30, 12)
	drawPanel(s, s.Bounds(), progression.PanelInventory, p, itemColors(cat))

	if !strings.Contains(s.Row(0), "Inventory 3/12") {
		t.Errorf("title row = %q", s.Row(0))
	}
	if n := countRune(s, slotFilled); n != 3 {
		t.Errorf("%d filled slots drawn, expected 3", n)
	}
	if n := countRune(s, slotEmpty); n != 9 {
		t.Errorf("%d empty slots drawn, expected 9", n)
	}
	if !strings.Contains(s.String(), "stone") || !strings.Contains(s.String(), "x2") {
		t.Errorf("totals missing:\n%s", s.String())
	}
}

func TestDrawVaultPanel(t *testing.T) {
	cat := catalog.Default()
	p := player.New(cat, player.Options{StackLimit: 50})
	colors := itemColors(cat)

	s := core.NewScreen(30, 8)
	drawPanel(s, s.Bounds(), progression.PanelVault, p, colors)
	if !strings.Contains(s.String(), "The vault is empty.") {
		t.Errorf("empty vault:\n%s", s.String())
	}

	ore, _ := cat.Item("copper_ore")
	for range 4 {
		p.Inventory().Add(ore)
	}
	inventory.Deposit(p.Inventory(), p.Vault(), ore.ID, 4)

	s.Clear()
	drawPanel(s, s.Bounds(), progression.PanelVault, p, colors)
	if !strings.Contains(s.Row(0), "Vault 1/100") {
		t.Errorf("title row = %q", s.Row(0))
	}
	if !strings.Contains(s.Row(1), "copper ore") || !strings.Contains(s.Row(1), "4/50") {
		t.Errorf("stack row = %q", s.Row(1))
	}
}

func TestDrawSkillsPanel(t *testing.T) {
	cat := catalog.Default()
	p := player.New(cat, player.Options{Partitions: 8})
	p.Skills().GainExperience(catalog.SkillMining, 40)

	s := core.NewScreen(34, 10)
	drawPanel(s, s.Bounds(), progression.PanelSkills, p, nil)

	filled := p.Skills().ProgressFraction(catalog.SkillMining)
	if filled == 0 || filled == 8 {
		t.Fatalf("test needs a partial bar, got %d/8", filled)
	}
	// Health sits at its floor with an empty bar.
	if n := countRune(s, barFilled); n != filled {
		t.Errorf("%d filled cells, expected %d", n, filled)
	}
	if n := countRune(s, barEmpty); n != 16-filled {
		t.Errorf("%d empty cells, expected %d", n, 16-filled)
	}
	if !strings.Contains(s.Row(1), "Mining") || !strings.Contains(s.Row(1), "lvl 1") {
		t.Errorf("mining row = %q", s.Row(1))
	}
	if !strings.Contains(s.String(), "43 to go") {
		t.Errorf("experience to next level missing:\n%s", s.String())
	}
}

func TestDrawPanelTooSmall(t *testing.T) {
	cat := catalog.Default()
	p := player.New(cat, player.Options{})
	s := core.NewScreen(2, 2)

	// Must not panic or draw outside the box.
	drawPanel(s, s.Bounds(), progression.PanelSkills, p, nil)
}
