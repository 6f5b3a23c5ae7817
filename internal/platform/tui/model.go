package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/player"
	"github.com/vovakirdan/skillquest/internal/progression"
)

// Running screen layout.
const (
	panelFrac    = 0.62 // Share of the width given to the narration log
	minPanelW    = 24
	promptHeight = 2 // Prompt and help rows below the screen buffer
)

// Options configures the front-end.
type Options struct {
	Catalog *catalog.Catalog
	Runtime core.RuntimeConfig
	Player  player.Options
	Store   RecordStore // nil disables records
	Logger  *log.Logger
}

type appState int

const (
	stateMainMenu appState = iota
	stateRunning
	statePaused
	stateRecords
)

// App is the root Bubble Tea model. It owns the menus and at most one
// running session.
type App struct {
	opts      Options
	state     appState
	width     int
	height    int
	screen    *core.Screen
	mainMenu  menu
	pauseMenu menu
	notice    string
	menuKeys  menuKeyMap
	gameKeys  gameKeyMap
	help      help.Model
	prompt    textinput.Model
	records   recordsView
	colors    map[catalog.ItemID]core.Color
	session   *session
	quitting  bool
	now       func() time.Time
}

// NewApp creates the model, starting at the main menu.
func NewApp(opts Options) App {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	prompt := textinput.New()
	prompt.Prompt = "> "
	prompt.Placeholder = "mine copper"
	prompt.CharLimit = 80

	a := App{
		opts:      opts,
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
		mainMenu:  newMenu("SkillQuest", itemNewGame, itemLoadGame, itemRecords, itemQuit),
		pauseMenu: newMenu("Paused", itemContinue, itemSaveGame, itemQuitToMain),
		menuKeys:  defaultMenuKeyMap(),
		gameKeys:  defaultGameKeyMap(),
		help:      help.New(),
		prompt:    prompt,
		colors:    itemColors(opts.Catalog),
		now:       time.Now,
	}
	a.screen = core.NewScreen(a.width, max(1, a.height-promptHeight))
	a.help.Width = a.width
	a.prompt.Width = max(10, a.width-4)
	return a
}

// Init starts the frame loop.
func (a App) Init() tea.Cmd {
	return frameCmd(a.opts.Runtime.FrameInterval())
}

// Update handles messages and updates the model state.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)

	case FrameMsg:
		if a.state == stateRunning {
			a.logEvents(a.session.advance(time.Time(msg)))
		}
		return a, frameCmd(a.opts.Runtime.FrameInterval())

	case tea.KeyMsg:
		switch a.state {
		case stateMainMenu:
			return a.handleMainMenuKey(msg)
		case statePaused:
			return a.handlePauseKey(msg)
		case stateRecords:
			return a.handleRecordsKey(msg)
		case stateRunning:
			return a.handleGameKey(msg)
		}
	}

	var cmd tea.Cmd
	if a.state == stateRunning {
		a.prompt, cmd = a.prompt.Update(msg)
	}
	return a, cmd
}

func (a App) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height
	a.opts.Runtime.ScreenW = msg.Width
	a.opts.Runtime.ScreenH = msg.Height
	a.screen.Resize(msg.Width, max(1, msg.Height-promptHeight))
	a.help.Width = msg.Width
	a.prompt.Width = max(10, msg.Width-4)

	if a.state == stateRecords {
		a.records, _, _ = a.records.update(msg)
	}
	return a, nil
}

func (a App) handleMainMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.menuKeys.Quit):
		return a.quit()
	case key.Matches(msg, a.menuKeys.Up):
		a.mainMenu.up()
		a.notice = ""
	case key.Matches(msg, a.menuKeys.Down):
		a.mainMenu.down()
		a.notice = ""
	case key.Matches(msg, a.menuKeys.Select):
		switch a.mainMenu.selected() {
		case itemNewGame:
			return a.startSession()
		case itemLoadGame:
			a.notice = wipNotice
		case itemRecords:
			a.notice = ""
			a.records = newRecordsView(a.opts.Store, a.width, a.height)
			a.state = stateRecords
		case itemQuit:
			return a.quit()
		}
	}
	return a, nil
}

func (a App) handlePauseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.menuKeys.Quit):
		return a.quit()
	case key.Matches(msg, a.menuKeys.Back):
		return a.resume()
	case key.Matches(msg, a.menuKeys.Up):
		a.pauseMenu.up()
		a.notice = ""
	case key.Matches(msg, a.menuKeys.Down):
		a.pauseMenu.down()
		a.notice = ""
	case key.Matches(msg, a.menuKeys.Select):
		switch a.pauseMenu.selected() {
		case itemContinue:
			return a.resume()
		case itemSaveGame:
			a.notice = wipNotice
		case itemQuitToMain:
			a.endSession()
			a.mainMenu.reset()
			a.notice = ""
			a.state = stateMainMenu
		}
	}
	return a, nil
}

func (a App) handleRecordsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var result recordsResult
	a.records, cmd, result = a.records.update(msg)
	switch result {
	case recordsBack:
		a.state = stateMainMenu
	case recordsQuit:
		return a.quit()
	}
	return a, cmd
}

func (a App) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.gameKeys.Quit):
		return a.quit()

	case key.Matches(msg, a.gameKeys.Pause):
		a.pauseMenu.reset()
		a.notice = ""
		a.prompt.Blur()
		a.state = statePaused
		return a, nil

	case key.Matches(msg, a.gameKeys.Submit):
		line := a.prompt.Value()
		a.prompt.Reset()
		events, err := a.session.submit(line)
		if err != nil {
			a.opts.Logger.Debug("command rejected", "input", line, "error", err)
		}
		a.logEvents(events)
		return a, nil
	}

	if a.prompt.Value() == "" {
		switch {
		case key.Matches(msg, a.gameKeys.Inventory):
			a.session.panel = progression.PanelInventory
			return a, nil
		case key.Matches(msg, a.gameKeys.Vault):
			a.session.panel = progression.PanelVault
			return a, nil
		case key.Matches(msg, a.gameKeys.Skills):
			a.session.panel = progression.PanelSkills
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return a, cmd
}

func (a App) startSession() (tea.Model, tea.Cmd) {
	a.session = newSession(a.opts.Catalog, a.opts.Runtime, a.opts.Player, a.now())
	a.notice = ""
	a.state = stateRunning
	a.prompt.Reset()
	a.opts.Logger.Info("session started", "id", a.session.id, "seed", a.session.seed)
	return a, a.prompt.Focus()
}

func (a App) resume() (tea.Model, tea.Cmd) {
	// Time spent paused is not mined.
	a.session.clock.Reset()
	a.notice = ""
	a.state = stateRunning
	return a, a.prompt.Focus()
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.endSession()
	a.quitting = true
	return a, tea.Quit
}

// endSession records the running session, if any, and drops it. Sessions
// that never ticked are not recorded.
func (a *App) endSession() {
	s := a.session
	if s == nil {
		return
	}
	a.session = nil

	rec := s.record(a.now())
	a.opts.Logger.Info("session ended",
		"id", rec.ID,
		"duration", rec.Duration().Round(time.Second),
		"ticks", rec.Ticks,
		"items", rec.ItemsObtained,
		"level_ups", rec.LevelUps,
	)
	if a.opts.Store == nil || rec.Ticks == 0 {
		return
	}
	if _, err := a.opts.Store.SaveSession(rec); err != nil {
		a.opts.Logger.Error("cannot save session", "id", rec.ID, "error", err)
	}
}

// logEvents reports the notable events to the log file.
func (a App) logEvents(events []progression.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case progression.LevelUpEvent:
			a.opts.Logger.Info("level up", "skill", ev.Skill, "level", ev.Level)
		case progression.InventoryFullEvent:
			a.opts.Logger.Info("inventory full", "resource", ev.Resource.ID)
		case progression.NotEnoughLevelEvent:
			a.opts.Logger.Debug("level too low", "resource", ev.Resource.ID, "required", ev.Required, "current", ev.Current)
		case progression.UnknownTargetEvent:
			a.opts.Logger.Debug("unknown target", "verb", ev.Verb, "name", ev.Name)
		}
	}
}

// View renders the current state to a string for display.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.state {
	case stateRecords:
		return a.records.view()

	case stateMainMenu:
		a.screen.Clear()
		a.drawTitle()
		box := a.mainMenu.draw(a.screen)
		a.drawNotice(box)
		return RenderScreen(a.screen) + "\n\n" + a.help.View(a.menuKeys)

	case statePaused:
		a.drawRunning()
		box := a.pauseMenu.draw(a.screen)
		a.drawNotice(box)
		return RenderScreen(a.screen) + "\n\n" + a.help.View(a.menuKeys)

	default:
		a.drawRunning()
		return RenderScreen(a.screen) + "\n" + a.prompt.View() + "\n" + a.help.View(a.gameKeys)
	}
}

func (a App) drawTitle() {
	_, h := a.mainMenu.size()
	y := (a.screen.Height()-h)/2 - 2
	if y < 0 {
		return
	}
	drawCentered(a.screen, y, a.screen.Bounds(), "S K I L L Q U E S T", core.ColorYellow)
}

func (a App) drawNotice(box core.Rect) {
	if a.notice == "" {
		return
	}
	drawCentered(a.screen, box.Bottom()+1, a.screen.Bounds(), a.notice, core.ColorYellow)
}

// drawRunning lays out the status line, narration log and side panel.
func (a App) drawRunning() {
	s := a.screen
	s.Clear()
	if a.session == nil {
		return
	}

	status, body := s.Bounds().SplitV(1)
	left := fmt.Sprintf(" %s", a.session.status())
	right := fmt.Sprintf("tick %d ", a.session.core.Ticks())
	s.DrawTextClipped(status.X, status.Y, status.Right(), left, core.ColorCyan)
	s.DrawTextClipped(max(0, status.Right()-len(right)), status.Y, status.Right(), right, frameColor)

	logArea, panelArea := body.SplitH(panelFrac)
	if panelArea.W < minPanelW {
		logArea, panelArea = body.SplitH(1)
	}

	s.DrawBox(logArea, frameColor)
	a.session.log.Draw(s, logArea.Inset(1))
	if panelArea.W > 0 {
		drawPanel(s, panelArea, a.session.panel, a.session.core.Player(), a.colors)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
