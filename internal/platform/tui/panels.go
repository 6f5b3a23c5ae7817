package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/player"
	"github.com/vovakirdan/skillquest/internal/progression"
)

// Panel glyphs.
const (
	slotFilled = '■'
	slotEmpty  = '·'
	barFilled  = '█'
	barEmpty   = '░'
)

const frameColor = core.ColorGray

// itemColors gives each item the color of its most common drop.
func itemColors(cat *catalog.Catalog) map[catalog.ItemID]core.Color {
	best := make(map[catalog.ItemID]catalog.Rarity)
	for _, res := range cat.Resources() {
		for _, d := range res.Drops() {
			r := d.Rarity()
			if cur, ok := best[d.Item.ID]; !ok || r < cur {
				best[d.Item.ID] = r
			}
		}
	}
	out := make(map[catalog.ItemID]core.Color, len(best))
	for id, r := range best {
		out[id] = r.Color()
	}
	return out
}

// drawPanel draws the selected side panel framed inside r.
func drawPanel(s *core.Screen, r core.Rect, panel progression.Panel, p *player.Player, colors map[catalog.ItemID]core.Color) {
	s.DrawBox(r, frameColor)
	inner := r.Inset(1)
	if inner.W < 1 || inner.H < 1 {
		return
	}

	switch panel {
	case progression.PanelInventory:
		inv := p.Inventory()
		drawTitle(s, r, fmt.Sprintf("Inventory %d/%d", inv.Len(), inv.Cap()))
		drawInventory(s, inner, p, colors)
	case progression.PanelVault:
		v := p.Vault()
		drawTitle(s, r, fmt.Sprintf("Vault %d/%d", v.Len(), v.Cap()))
		drawVault(s, inner, p, colors)
	case progression.PanelSkills:
		drawTitle(s, r, "Skills")
		drawSkills(s, inner, p)
	}
}

func drawTitle(s *core.Screen, r core.Rect, title string) {
	s.DrawTextClipped(r.X+2, r.Y, r.Right()-2, " "+title+" ", core.ColorBrightWhite)
}

// drawInventory draws one glyph per slot followed by the carried totals.
func drawInventory(s *core.Screen, r core.Rect, p *player.Player, colors map[catalog.ItemID]core.Color) {
	slots := p.Inventory().Snapshot()
	cols := max(1, r.W/2)

	y := r.Y
	for i, slot := range slots {
		row, col := i/cols, i%cols
		y = r.Y + row
		if y >= r.Bottom() {
			break
		}
		glyph, c := slotEmpty, frameColor
		if slot.Filled {
			glyph, c = slotFilled, colorOf(colors, slot.Item.ID)
		}
		s.SetColored(r.X+col*2, y, glyph, c)
	}

	y += 2
	for _, st := range p.Inventory().Totals() {
		if y >= r.Bottom() {
			return
		}
		drawEntry(s, r, y, st.Item.Name, colorOf(colors, st.Item.ID), fmt.Sprintf("x%d", st.Quantity))
		y++
	}
}

func drawVault(s *core.Screen, r core.Rect, p *player.Player, colors map[catalog.ItemID]core.Color) {
	v := p.Vault()
	stacks := v.Snapshot()
	if len(stacks) == 0 {
		s.DrawTextClipped(r.X, r.Y, r.Right(), "The vault is empty.", frameColor)
		return
	}
	for i, st := range stacks {
		y := r.Y + i
		if y >= r.Bottom() {
			return
		}
		qty := fmt.Sprintf("%d", st.Quantity)
		if limit := v.StackLimit(); limit > 0 {
			qty = fmt.Sprintf("%d/%d", st.Quantity, limit)
		}
		drawEntry(s, r, y, st.Item.Name, colorOf(colors, st.Item.ID), qty)
	}
}

// drawSkills shows each skill's level and a progress bar quantized to the
// skill set's partitions.
func drawSkills(s *core.Screen, r core.Rect, p *player.Player) {
	set := p.Skills()
	y := r.Y
	for _, sk := range set.Skills() {
		if y+1 >= r.Bottom() {
			return
		}
		drawEntry(s, r, y, capitalize(sk.String()), core.ColorWhite, fmt.Sprintf("lvl %d", set.Level(sk)))

		parts := set.Partitions()
		filled := set.ProgressFraction(sk)
		x := s.DrawTextClipped(r.X, y+1, r.Right(), "[", frameColor)
		x = s.DrawTextClipped(x, y+1, r.Right(), strings.Repeat(string(barFilled), filled), core.ColorGreen)
		x = s.DrawTextClipped(x, y+1, r.Right(), strings.Repeat(string(barEmpty), parts-filled), frameColor)
		x = s.DrawTextClipped(x, y+1, r.Right(), "]", frameColor)

		next := "max"
		if n := set.ExperienceToNext(sk); n > 0 {
			next = fmt.Sprintf("%d to go", n)
		}
		s.DrawTextClipped(x+1, y+1, r.Right(), next, frameColor)
		y += 3
	}
}

// drawEntry writes a name on the left and a value right-aligned.
func drawEntry(s *core.Screen, r core.Rect, y int, name string, c core.Color, value string) {
	vx := r.Right() - runewidth.StringWidth(value)
	drawWide(s, r.X, y, max(r.X, vx-1), name, c)
	s.DrawTextClipped(max(r.X, vx), y, r.Right(), value, frameColor)
}

func colorOf(colors map[catalog.ItemID]core.Color, id catalog.ItemID) core.Color {
	if c, ok := colors[id]; ok {
		return c
	}
	return core.ColorWhite
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
