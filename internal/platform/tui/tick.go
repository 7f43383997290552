// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, tick pacing, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires a tick after the given wait.
// The wait is already net of the time the previous tick's work consumed;
// a non-positive wait fires immediately (no catch-up of missed ticks).
func tickCmd(wait time.Duration) tea.Cmd {
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
