package tui

import "time"

// statsWindow is how many frames are summarized in one frame-time report.
const statsWindow = 60

// FrameStats accumulates how long frames take to process.
type FrameStats struct {
	window int
	frames int
	total  time.Duration
}

// NewFrameStats creates stats that report every window frames.
func NewFrameStats(window int) *FrameStats {
	if window <= 0 {
		window = statsWindow
	}
	return &FrameStats{window: window}
}

// Record adds one frame. Once window frames are in, it returns their total
// and average processing time, ok is true, and counting starts over.
func (f *FrameStats) Record(d time.Duration) (total, avg time.Duration, ok bool) {
	f.frames++
	f.total += d
	if f.frames < f.window {
		return 0, 0, false
	}

	total = f.total
	avg = total / time.Duration(f.frames)
	f.frames = 0
	f.total = 0
	return total, avg, true
}
