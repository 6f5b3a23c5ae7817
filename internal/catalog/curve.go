package catalog

import "math"

// Unreachable is the threshold of any level past the end of a curve.
const Unreachable = math.MaxInt

// Curve is a non-decreasing experience threshold table. Level L is reached
// once cumulative experience is at least Threshold(L); Threshold(1) is 0.
type Curve struct {
	name       string
	thresholds []int
}

// DefaultThresholds is the classic eleven-level mining curve.
var DefaultThresholds = []int{0, 83, 174, 276, 388, 512, 650, 801, 969, 1154, 1358}

// Name returns the curve name as declared in the catalog.
func (c Curve) Name() string {
	return c.name
}

// MaxLevel returns the last level defined by the table.
func (c Curve) MaxLevel() int {
	return len(c.thresholds)
}

// Threshold returns the cumulative experience needed for level.
func (c Curve) Threshold(level int) int {
	if level < 1 {
		return 0
	}
	if level > len(c.thresholds) {
		return Unreachable
	}
	return c.thresholds[level-1]
}

// LevelFor returns the largest level whose threshold exp reaches.
func (c Curve) LevelFor(exp int) int {
	level := 1
	for l := 2; l <= len(c.thresholds); l++ {
		if exp < c.thresholds[l-1] {
			break
		}
		level = l
	}
	return level
}
