package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "partial overlap",
			a:        NewBox(0, 0, 0.1, 0.1),      // [-0.1,0.1]x[-0.1,0.1]
			b:        NewBox(0.15, 0.1, 0.1, 0.1), // [0.05,0.25]x[0,0.2]
			expected: true,
		},
		{
			name:     "edges touching horizontally",
			a:        NewBox(0, 0, 0.1, 0.1),   // [-0.1,0.1]
			b:        NewBox(0.2, 0, 0.1, 0.1), // [0.1,0.3]
			expected: false,
		},
		{
			name:     "edges touching vertically",
			a:        NewBox(0, 0, 0.25, 0.25),
			b:        NewBox(0, 0.5, 0.25, 0.25),
			expected: false,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(-0.5, 0, 0.1, 0.1),
			b:        NewBox(0.5, 0, 0.1, 0.1),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(0, -0.5, 0.1, 0.1),
			b:        NewBox(0, 0.5, 0.1, 0.1),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 0.5, 0.5),
			b:        NewBox(0.1, 0.1, 0.05, 0.05),
			expected: true,
		},
		{
			name:     "zero-size box inside",
			a:        NewBox(0, 0, 0.5, 0.5),
			b:        NewBox(0, 0, 0, 0),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}

			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(0.5, -0.25, 0.25, 0.5)

	if b.Left() != 0.25 {
		t.Errorf("Left() = %f, expected 0.25", b.Left())
	}
	if b.Right() != 0.75 {
		t.Errorf("Right() = %f, expected 0.75", b.Right())
	}
	if b.Bottom() != -0.75 {
		t.Errorf("Bottom() = %f, expected -0.75", b.Bottom())
	}
	if b.Top() != 0.25 {
		t.Errorf("Top() = %f, expected 0.25", b.Top())
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
		{0.5, -1.0, 1.0, 0.5},
		{-1.5, -1.0, 1.0, -1.0},
		{1.5, -1.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
