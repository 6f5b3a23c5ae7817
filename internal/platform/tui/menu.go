package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/skillquest/internal/core"
)

// Menu entries.
const (
	itemNewGame    = "New Game"
	itemLoadGame   = "Load Game"
	itemRecords    = "Records"
	itemQuit       = "Quit"
	itemContinue   = "Continue"
	itemSaveGame   = "Save Game"
	itemQuitToMain = "Quit to Main Menu"
)

// wipNotice answers menu entries that are not built yet.
const wipNotice = "Saving and loading games is a work in progress."

const menuCursor = "-> "

// menu is a vertical list with a cursor. It wraps at both ends.
type menu struct {
	title  string
	items  []string
	cursor int
}

func newMenu(title string, items ...string) menu {
	if len(items) == 0 {
		panic("tui: menu cannot be empty")
	}
	return menu{title: title, items: items}
}

func (m *menu) up() {
	m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
}

func (m *menu) down() {
	m.cursor = (m.cursor + 1) % len(m.items)
}

func (m *menu) reset() {
	m.cursor = 0
}

func (m menu) selected() string {
	return m.items[m.cursor]
}

// size returns the box dimensions needed to show the menu.
func (m menu) size() (w, h int) {
	w = runewidth.StringWidth(m.title)
	for _, item := range m.items {
		w = max(w, runewidth.StringWidth(menuCursor+item))
	}
	// Border plus one column of padding on each side, title row and gap.
	return w + 4, len(m.items) + 4
}

// draw centers the menu box on the screen.
func (m menu) draw(s *core.Screen) core.Rect {
	w, h := m.size()
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	for y := box.Y; y < box.Bottom(); y++ {
		s.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	s.DrawBox(box, frameColor)

	inner := box.Inset(1)
	drawCentered(s, inner.Y, inner, m.title, core.ColorBrightWhite)
	for i, item := range m.items {
		y := inner.Y + 2 + i
		if i == m.cursor {
			drawWide(s, inner.X+1, y, inner.Right(), menuCursor+item, core.ColorYellow)
			continue
		}
		drawWide(s, inner.X+1, y, inner.Right(), strings.Repeat(" ", len(menuCursor))+item, core.ColorWhite)
	}
	return box
}

// drawCentered writes text horizontally centered within r on row y.
func drawCentered(s *core.Screen, y int, r core.Rect, text string, c core.Color) {
	x := r.X + max(0, (r.W-runewidth.StringWidth(text))/2)
	drawWide(s, x, y, r.Right(), text, c)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
