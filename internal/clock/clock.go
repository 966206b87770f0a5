// Package clock publishes the current time to overdue evaluation.
package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const DefaultInterval = time.Second

type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// TickMsg carries the instant a tick fired.
type TickMsg time.Time

// Tick schedules one TickMsg after d. The receiver re-arms it on every tick,
// so the ticker lives exactly as long as the program processing it.
func Tick(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = DefaultInterval
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
