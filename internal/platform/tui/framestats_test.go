package tui

import (
	"testing"
	"time"
)

func TestFrameStatsReportsEveryWindow(t *testing.T) {
	f := NewFrameStats(4)

	for i := 1; i <= 3; i++ {
		if _, _, ok := f.Record(time.Millisecond); ok {
			t.Fatalf("reported after %d frames", i)
		}
	}

	total, avg, ok := f.Record(5 * time.Millisecond)
	if !ok {
		t.Fatal("expected a report after 4 frames")
	}
	if total != 8*time.Millisecond || avg != 2*time.Millisecond {
		t.Errorf("total = %v avg = %v, expected 8ms and 2ms", total, avg)
	}

	// Counting starts over.
	if _, _, ok := f.Record(time.Millisecond); ok {
		t.Error("reported right after a reset")
	}
}

func TestFrameStatsDefaultWindow(t *testing.T) {
	f := NewFrameStats(0)

	reports := 0
	for i := 0; i < statsWindow*3; i++ {
		if _, _, ok := f.Record(time.Microsecond); ok {
			reports++
		}
	}
	if reports != 3 {
		t.Errorf("got %d reports over %d frames, expected 3", reports, statsWindow*3)
	}
}

func TestFrameClock(t *testing.T) {
	var c frameClock

	if got := c.Advance(base); got != 0 {
		t.Errorf("first frame elapsed = %g, expected 0", got)
	}

	tests := []struct {
		name string
		step time.Duration
		want float64
	}{
		{"one frame", 16 * time.Millisecond, 0.016},
		{"stall is clamped", 3 * time.Second, MaxElapsed},
		{"clock going back", -time.Second, 0},
	}

	now := base
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			now = now.Add(tc.step)
			if got := c.Advance(now); got != tc.want {
				t.Errorf("Advance() = %g, expected %g", got, tc.want)
			}
		})
	}

	c.Reset()
	if got := c.Advance(base.Add(time.Hour)); got != 0 {
		t.Errorf("elapsed after Reset = %g, expected 0", got)
	}
}
