package core

import "time"

// Default timing for the fixed-step loop.
const (
	DefaultTickInterval = 600 * time.Millisecond
	DefaultFPS          = 60
)

// RuntimeConfig contains the runtime parameters handed to the front-end.
// The progression engine itself only sees the seed.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	FPS          int           // Frames rendered per second
	TickInterval time.Duration // Duration of one game-logic tick
	Seed         int64         // RNG seed, 0 means derive from time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		FPS:          DefaultFPS,
		TickInterval: DefaultTickInterval,
		Seed:         0,
	}
}

// FrameInterval returns the duration of a single rendered frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
