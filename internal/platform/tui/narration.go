package tui

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/skillquest/internal/core"
)

// defaultNarrationLimit bounds the number of kept entries.
const defaultNarrationLimit = 200

// Span is a run of text drawn in one color.
type Span struct {
	Text  string
	Color core.Color
}

// Line is one narration entry before wrapping.
type Line []Span

// Plain returns the text of the line without colors.
func (l Line) Plain() string {
	var sb strings.Builder
	for _, sp := range l {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// Narration is a bounded log of narration lines, oldest first.
type Narration struct {
	lines []Line
	limit int
}

// NewNarration creates a log keeping at most limit lines.
func NewNarration(limit int) *Narration {
	if limit < 1 {
		limit = defaultNarrationLimit
	}
	return &Narration{limit: limit}
}

// Push appends a line, dropping the oldest one once the limit is hit.
func (n *Narration) Push(line Line) {
	if len(line) == 0 {
		return
	}
	n.lines = append(n.lines, line)
	if over := len(n.lines) - n.limit; over > 0 {
		n.lines = append(n.lines[:0], n.lines[over:]...)
	}
}

// Say is Push for a single-colored line.
func (n *Narration) Say(text string, c core.Color) {
	n.Push(Line{{Text: text, Color: c}})
}

// Len returns the number of kept lines.
func (n *Narration) Len() int {
	return len(n.lines)
}

// Lines returns a copy of the kept lines.
func (n *Narration) Lines() []Line {
	return append([]Line(nil), n.lines...)
}

// Layout wraps every line to width cells and returns the last height rows.
func (n *Narration) Layout(width, height int) []Line {
	if width < 1 || height < 1 {
		return nil
	}
	var rows []Line
	for _, line := range n.lines {
		rows = append(rows, wrapLine(line, width)...)
	}
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}
	return rows
}

// Draw renders the newest lines into r, bottom-aligned like a chat log.
func (n *Narration) Draw(s *core.Screen, r core.Rect) {
	rows := n.Layout(r.W, r.H)
	y := r.Bottom() - len(rows)
	for _, row := range rows {
		x := r.X
		for _, sp := range row {
			x = drawWide(s, x, y, r.Right(), sp.Text, sp.Color)
		}
		y++
	}
}

// drawWide writes text using terminal cell widths. The second cell of a
// wide rune holds rune 0 so RenderScreen keeps the columns aligned.
func drawWide(s *core.Screen, x, y, maxX int, text string, c core.Color) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetColored(x, y, r, c)
		if w == 2 {
			s.SetColored(x+1, y, 0, c)
		}
		x += w
	}
	return x
}

// wrapLine breaks a line at spaces so that no row is wider than width.
// Words wider than a whole row are split. Colors may change inside a word.
func wrapLine(line Line, width int) []Line {
	words := splitWords(line)
	if len(words) == 0 {
		return []Line{{}}
	}

	var rows []Line
	var row Line
	used := 0
	flush := func() {
		rows = append(rows, row)
		row = nil
		used = 0
	}

	for _, w := range words {
		if used > 0 && used+1+runewidth.StringWidth(w.Plain()) > width {
			flush()
		}
		if used > 0 {
			row = appendText(row, " ", w[0].Color)
			used++
		}
		for _, sp := range w {
			for _, r := range sp.Text {
				rw := runewidth.RuneWidth(r)
				if used > 0 && used+rw > width {
					flush()
				}
				row = appendText(row, string(r), sp.Color)
				used += rw
			}
		}
	}
	if len(row) > 0 {
		flush()
	}
	return rows
}

// splitWords cuts a line at whitespace, keeping the colors of each word.
func splitWords(line Line) []Line {
	var words []Line
	var cur Line
	for _, sp := range line {
		for _, r := range sp.Text {
			if unicode.IsSpace(r) {
				if len(cur) > 0 {
					words = append(words, cur)
					cur = nil
				}
				continue
			}
			cur = appendText(cur, string(r), sp.Color)
		}
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

// appendText extends the last span when the color matches.
func appendText(row Line, text string, c core.Color) Line {
	if n := len(row); n > 0 && row[n-1].Color == c {
		row[n-1].Text += text
		return row
	}
	return append(row, Span{Text: text, Color: c})
}
