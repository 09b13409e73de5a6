// Package tui provides the Bubble Tea integration for the terminal platform.
// It handles the UI loop, input mapping, fixed-timestep simulation and
// score persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a frame tick. The model measures
// real elapsed time between ticks and drains it in fixed simulation steps,
// so a delayed frame never slows the game down.
type TickMsg time.Time

// tickCmd returns a command that fires the next frame tick.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
