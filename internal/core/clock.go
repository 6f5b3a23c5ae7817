package core

import "time"

// maxCatchUpTicks bounds how many ticks a single Advance may release.
// A long stall (suspended terminal, debugger) would otherwise replay
// minutes of mining in one frame.
const maxCatchUpTicks = 10

// FixedStep drains elapsed wall-clock time in fixed increments.
// The frame loop calls Advance once per frame and runs one game tick
// for every increment it returns.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep creates an accumulator for the given tick interval.
// A non-positive interval falls back to DefaultTickInterval.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &FixedStep{interval: interval}
}

// Interval returns the tick interval.
func (f *FixedStep) Interval() time.Duration {
	return f.interval
}

// Advance adds the time elapsed since the previous call and returns the
// number of whole ticks that are now due. The first call only records now.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	return f.Add(delta)
}

// Add feeds an explicit delta into the accumulator.
func (f *FixedStep) Add(delta time.Duration) int {
	f.accumulator += delta
	ticks := 0
	for f.accumulator >= f.interval {
		f.accumulator -= f.interval
		ticks++
		if ticks == maxCatchUpTicks {
			f.accumulator = 0
			break
		}
	}
	return ticks
}

// Reset drops any accumulated time, e.g. when leaving the pause menu.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Pending returns the accumulated time not yet converted to ticks.
func (f *FixedStep) Pending() time.Duration {
	return f.accumulator
}
