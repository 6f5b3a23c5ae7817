package core

import (
	"testing"
	"time"
)

func TestFixedStepDrainsWholeTicks(t *testing.T) {
	f := NewFixedStep(600 * time.Millisecond)

	tests := []struct {
		delta   time.Duration
		ticks   int
		pending time.Duration
	}{
		{100 * time.Millisecond, 0, 100 * time.Millisecond},
		{499 * time.Millisecond, 0, 599 * time.Millisecond},
		{1 * time.Millisecond, 1, 0},
		{1300 * time.Millisecond, 2, 100 * time.Millisecond},
	}

	for i, tc := range tests {
		got := f.Add(tc.delta)
		if got != tc.ticks {
			t.Errorf("step %d: Add(%v) = %d ticks, expected %d", i, tc.delta, got, tc.ticks)
		}
		if f.Pending() != tc.pending {
			t.Errorf("step %d: Pending() = %v, expected %v", i, f.Pending(), tc.pending)
		}
	}
}

func TestFixedStepAdvanceUsesWallClock(t *testing.T) {
	f := NewFixedStep(600 * time.Millisecond)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := f.Advance(start); got != 0 {
		t.Errorf("first Advance should only record time, got %d ticks", got)
	}
	if got := f.Advance(start.Add(1250 * time.Millisecond)); got != 2 {
		t.Errorf("Advance after 1.25s = %d, expected 2", got)
	}
	// Clock going backwards must not release ticks
	if got := f.Advance(start); got != 0 {
		t.Errorf("Advance with negative delta = %d, expected 0", got)
	}
}

func TestFixedStepCatchUpIsBounded(t *testing.T) {
	f := NewFixedStep(time.Second)

	got := f.Add(time.Hour)
	if got != maxCatchUpTicks {
		t.Errorf("Add(1h) = %d ticks, expected cap of %d", got, maxCatchUpTicks)
	}
	if f.Pending() != 0 {
		t.Errorf("backlog should be dropped after the cap, pending = %v", f.Pending())
	}
}

func TestFixedStepResetAndDefaults(t *testing.T) {
	f := NewFixedStep(0)
	if f.Interval() != DefaultTickInterval {
		t.Errorf("Interval() = %v, expected default %v", f.Interval(), DefaultTickInterval)
	}

	f.Add(300 * time.Millisecond)
	f.Reset()
	if f.Pending() != 0 {
		t.Error("Reset should drop pending time")
	}
}

func TestRuntimeConfigFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("FrameInterval() = %v", cfg.FrameInterval())
	}
	cfg.FPS = 0
	if cfg.FrameInterval() != time.Second/DefaultFPS {
		t.Error("zero FPS should fall back to the default")
	}
}
