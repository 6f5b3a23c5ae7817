package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	// Insetting past the size must not produce negative dimensions
	small := NewRect(0, 0, 2, 2).Inset(3)
	if small.W != 0 || small.H != 0 {
		t.Errorf("Inset on small rect = %+v, expected zero size", small)
	}
}

func TestRectSplitH(t *testing.T) {
	left, right := NewRect(0, 0, 100, 20).SplitH(0.7)

	if left.W != 70 || right.W != 30 {
		t.Errorf("SplitH widths = %d/%d, expected 70/30", left.W, right.W)
	}
	if right.X != 70 {
		t.Errorf("right.X = %d, expected 70", right.X)
	}
	if left.H != 20 || right.H != 20 {
		t.Error("SplitH should keep the height")
	}
}

func TestRectSplitV(t *testing.T) {
	top, bottom := NewRect(0, 0, 40, 24).SplitV(20)
	if top.H != 20 || bottom.H != 4 || bottom.Y != 20 {
		t.Errorf("SplitV = %+v / %+v", top, bottom)
	}

	top, bottom = NewRect(0, 0, 40, 5).SplitV(10)
	if top.H != 5 || bottom.H != 0 {
		t.Errorf("SplitV beyond height = %+v / %+v", top, bottom)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
