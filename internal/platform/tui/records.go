package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/storage"
)

// Records layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the tab sidebar
	sidebarWidth       = 20  // Width of the tab sidebar
	maxRecords         = 100 // Max rows to load
)

const recentTab = "recent"

// RecordStore is the part of the records database the front-end uses.
type RecordStore interface {
	SaveSession(rec storage.SessionRecord) (uuid.UUID, error)
	RecentSessions(limit int) ([]storage.SessionRecord, error)
	TopSkills(skill string, limit int) ([]storage.SkillEntry, error)
}

type recordsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k recordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back}
}

func (k recordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

func defaultRecordsKeyMap() recordsKeyMap {
	return recordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next table"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev table"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// recordsResult tells the app what the records view wants next.
type recordsResult int

const (
	recordsStay recordsResult = iota
	recordsBack
	recordsQuit
)

// recordsView lists finished sessions: the most recent ones and the best
// per skill.
type recordsView struct {
	store       RecordStore
	tabs        []string
	tab         int
	rows        []table.Row
	loadErr     error
	table       table.Model
	help        help.Model
	keys        recordsKeyMap
	width       int
	height      int
	showSidebar bool
}

func newRecordsView(store RecordStore, width, height int) recordsView {
	tabs := []string{recentTab}
	for _, sk := range catalog.AllSkills() {
		tabs = append(tabs, sk.String())
	}

	h := help.New()
	h.Width = width

	r := recordsView{
		store:       store,
		tabs:        tabs,
		keys:        defaultRecordsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	r.load()
	return r
}

// load reads the current tab from the store and rebuilds the table.
func (r *recordsView) load() {
	r.rows, r.loadErr = nil, nil
	if r.store != nil {
		if r.tabs[r.tab] == recentTab {
			r.rows, r.loadErr = r.recentRows()
		} else {
			r.rows, r.loadErr = r.skillRows(r.tabs[r.tab])
		}
	}
	r.table = r.createTable()
	r.table.SetRows(r.rows)
	r.table.GotoTop()
}

func (r *recordsView) recentRows() ([]table.Row, error) {
	recs, err := r.store.RecentSessions(maxRecords)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(recs))
	for i, rec := range recs {
		rows[i] = table.Row{
			rec.EndedAt.Local().Format("Jan 02 15:04"),
			rec.Duration().Round(time.Second).String(),
			fmt.Sprintf("%d", rec.ItemsObtained),
			fmt.Sprintf("%d", rec.LevelUps),
			skillSummary(rec.Skills),
		}
	}
	return rows, nil
}

func (r *recordsView) skillRows(skill string) ([]table.Row, error) {
	entries, err := r.store.TopSkills(skill, maxRecords)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Level),
			fmt.Sprintf("%d", e.Experience),
			e.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

// skillSummary renders "mining 3" style pairs for skills that gained exp.
func skillSummary(skills []storage.SkillRecord) string {
	var parts []string
	for _, sk := range skills {
		if sk.Gained > 0 {
			parts = append(parts, fmt.Sprintf("%s %d (+%d)", sk.Skill, sk.Level, sk.Gained))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// createTable creates a table with the columns of the current tab.
func (r *recordsView) createTable() table.Model {
	tableWidth := r.width - 6 // Border, padding and margins
	if r.showSidebar {
		tableWidth -= sidebarWidth + 4
	}

	var columns []table.Column
	if r.tabs[r.tab] == recentTab {
		columns = []table.Column{
			{Title: "Ended", Width: 13},
			{Title: "Time", Width: 9},
			{Title: "Items", Width: 6},
			{Title: "Lvl+", Width: 5},
			{Title: "Skills", Width: max(10, tableWidth-43)},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Level", Width: 6},
			{Title: "Exp", Width: 10},
			{Title: "Date", Width: 13},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, r.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (r recordsView) update(msg tea.Msg) (recordsView, tea.Cmd, recordsResult) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, r.keys.Quit):
			return r, nil, recordsQuit

		case key.Matches(msg, r.keys.Back):
			return r, nil, recordsBack

		case key.Matches(msg, r.keys.Next):
			r.tab = (r.tab + 1) % len(r.tabs)
			r.load()
			return r, nil, recordsStay

		case key.Matches(msg, r.keys.Prev):
			r.tab = (r.tab - 1 + len(r.tabs)) % len(r.tabs)
			r.load()
			return r, nil, recordsStay
		}

	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.showSidebar = r.width >= minWidthForSidebar
		r.help.Width = msg.Width
		r.table = r.createTable()
		r.table.SetRows(r.rows)
		return r, nil, recordsStay
	}

	r.table, cmd = r.table.Update(msg)
	return r, cmd, recordsStay
}

func (r recordsView) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("RECORDS - "+tabTitle(r.tabs[r.tab]), r.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if r.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(r.renderTabs("\n"))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", boxStyle.Render(r.renderTableContent())))
	} else {
		b.WriteString(centerText(r.renderTabs("  "), r.width))
		b.WriteString("\n\n")
		b.WriteString(boxStyle.Render(r.renderTableContent()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(r.help.View(r.keys)))

	return b.String()
}

func (r recordsView) renderTabs(sep string) string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	names := make([]string, len(r.tabs))
	for i, tab := range r.tabs {
		if i == r.tab {
			names[i] = active.Render("> " + tabTitle(tab))
		} else {
			names[i] = idle.Render("  " + tabTitle(tab))
		}
	}
	return strings.Join(names, sep)
}

func (r recordsView) renderTableContent() string {
	if r.loadErr != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Padding(2, 4).
			Render("Could not load records:\n" + r.loadErr.Error())
	}
	if len(r.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nGo mine something!")
	}
	return r.table.View()
}

func tabTitle(tab string) string {
	if tab == recentTab {
		return "Recent sessions"
	}
	return "Best " + tab
}
