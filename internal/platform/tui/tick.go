// Package tui hosts Balloon Drive in a terminal through Bubble Tea.
// It handles the terminal UI loop, input mapping, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is the host's per-frame callback, carrying the wall time it fired.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(hostRate int) tea.Cmd {
	interval := time.Second / time.Duration(hostRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sinceMillis converts a wall time to milliseconds since start.
func sinceMillis(start, t time.Time) float64 {
	return float64(t.Sub(start)) / float64(time.Millisecond)
}
