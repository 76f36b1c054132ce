// Package tui drives the game in a terminal with Bubble Tea. It turns key
// presses into held keys, keeps the frame clock, records finished rounds and
// serves the same session flow over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flap/internal/core"
)

// MaxElapsed caps the time one frame may simulate, so a stalled terminal
// cannot move entities through each other.
const MaxElapsed = 0.25

var nextModelID atomic.Uint64

// TickMsg is sent to trigger a game simulation tick.
// Model identifies the game model whose tick loop sent it.
type TickMsg struct {
	Model uint64
	Time  time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, model uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Model: model, Time: t}
	})
}

// frameClock measures the seconds between consecutive frames.
type frameClock struct {
	last    time.Time
	started bool
}

// Advance returns the seconds since the previous frame, 0 on the first one.
// The result is clamped to [0, MaxElapsed].
func (c *frameClock) Advance(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last).Seconds()
	c.last = now
	return core.ClampF(elapsed, 0, MaxElapsed)
}

// Reset makes the next frame a first frame again.
func (c *frameClock) Reset() {
	*c = frameClock{}
}
