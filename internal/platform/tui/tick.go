// Package tui is the Bubble Tea front-end for SkillQuest: menus, the
// running screen with its narration log and side panels, and the records
// view. Game logic lives in the progression package; this package only
// feeds it commands and ticks and renders what it reports.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame.
type FrameMsg time.Time

// frameCmd schedules the next frame message.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
