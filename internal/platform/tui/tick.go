// Package tui provides the Bubble Tea integration for dirtbikes.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID ties the message to the model that scheduled it, so a stale tick from
// a finished game cannot drive a new one.
type TickMsg struct {
	ID int
	At time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick message after one interval.
func tickCmd(id, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, At: t}
	})
}
