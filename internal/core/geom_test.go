package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 20, 20)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"inside", Cell{10, 10}, true},
		{"top-left corner", Cell{0, 0}, true},
		{"bottom-right corner", Cell{19, 19}, true},
		{"right edge (exclusive)", Cell{20, 5}, false},
		{"bottom edge (exclusive)", Cell{5, 20}, false},
		{"outside left", Cell{-1, 5}, false},
		{"outside top", Cell{5, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.cell)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.cell, result, tc.expected)
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

	if c := r.Center(); c != (Cell{15, 17}) {
		t.Errorf("Center() = %v, expected (15, 17)", c)
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 3, Y: 4}

	if got := c.Add(1, 0); got != (Cell{4, 4}) {
		t.Errorf("Add(1, 0) = %v, expected (4, 4)", got)
	}
	if got := c.Add(0, -1); got != (Cell{3, 3}) {
		t.Errorf("Add(0, -1) = %v, expected (3, 3)", got)
	}
	if c != (Cell{3, 4}) {
		t.Error("Add should not modify the receiver")
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
