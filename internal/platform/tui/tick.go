// Package tui provides the Bubble Tea front end for the ring board: the
// interactive board, the run history table and the SSH server that serves
// one board per connection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// HopMsg advances the path replay by one tile. ID names the replay that
// scheduled it; hops left over from an earlier replay are dropped.
type HopMsg struct {
	ID int
	At time.Time
}

// hopCmd schedules the next hop of replay id at the given rate (hops per
// second).
func hopCmd(id, hopRate int) tea.Cmd {
	if hopRate <= 0 {
		hopRate = 1
	}
	interval := time.Second / time.Duration(hopRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return HopMsg{ID: id, At: t}
	})
}
