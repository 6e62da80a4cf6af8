package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 80, 40),
			b:        NewRect(40, 20, 80, 40),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "bullet inside tank",
			a:        NewRect(100, 500, 80, 40),
			b:        NewRect(135, 510, 10, 5),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-100, -80, 80, 40),
			b:        NewRect(-30, -50, 10, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	r := RectCentered(140, 500, 10, 5)
	if r.X != 135 || r.Y != 498 {
		t.Errorf("RectCentered position = (%d, %d), expected (135, 498)", r.X, r.Y)
	}
	if r.CenterX() != 140 {
		t.Errorf("CenterX() = %d, expected 140", r.CenterX())
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(10, 20, 5, 5).Translate(-15, 3)
	if r.X != -5 || r.Y != 23 || r.W != 5 || r.H != 5 {
		t.Errorf("Translate() = %+v", r)
	}
}

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
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{-900, -800, 0, -800},
		{0, -800, 0, 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestDivisionHelpers(t *testing.T) {
	if CeilDiv(800, 80) != 10 {
		t.Errorf("CeilDiv(800, 80) = %d", CeilDiv(800, 80))
	}
	if CeilDiv(801, 80) != 11 {
		t.Errorf("CeilDiv(801, 80) = %d", CeilDiv(801, 80))
	}
	if FloorDiv(-5, 10) != -1 {
		t.Errorf("FloorDiv(-5, 10) = %d, expected -1", FloorDiv(-5, 10))
	}
	if FloorDiv(25, 10) != 2 {
		t.Errorf("FloorDiv(25, 10) = %d, expected 2", FloorDiv(25, 10))
	}
}
