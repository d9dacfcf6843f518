package geom

import "testing"

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		inner    Rect
		expected bool
	}{
		{
			name:     "fully inside",
			outer:    NewRect(0, 0, 100, 100),
			inner:    NewRect(10, 10, 20, 20),
			expected: true,
		},
		{
			name:     "identical rects",
			outer:    NewRect(5, 5, 50, 50),
			inner:    NewRect(5, 5, 50, 50),
			expected: true,
		},
		{
			name:     "touching right edge",
			outer:    NewRect(0, 0, 100, 100),
			inner:    NewRect(90, 0, 10, 10),
			expected: true,
		},
		{
			name:     "overhanging right edge",
			outer:    NewRect(0, 0, 100, 100),
			inner:    NewRect(95, 0, 10, 10),
			expected: false,
		},
		{
			name:     "left of outer",
			outer:    NewRect(10, 10, 50, 50),
			inner:    NewRect(0, 20, 5, 5),
			expected: false,
		},
		{
			name:     "overhanging bottom",
			outer:    NewRect(0, 0, 100, 100),
			inner:    NewRect(10, 95, 10, 10),
			expected: false,
		},
		{
			name:     "larger than outer",
			outer:    NewRect(0, 0, 10, 10),
			inner:    NewRect(-5, -5, 20, 20),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.outer.Contains(tc.inner)
			if result != tc.expected {
				t.Errorf("Contains() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectMoveInside(t *testing.T) {
	bound := NewRect(0, 0, 100, 100)

	tests := []struct {
		name     string
		rect     Rect
		expected Rect
		ok       bool
	}{
		{
			name:     "already inside is unchanged",
			rect:     NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 20, 20),
			ok:       true,
		},
		{
			name:     "clamped from the left",
			rect:     NewRect(-30, 40, 20, 20),
			expected: NewRect(0, 40, 20, 20),
			ok:       true,
		},
		{
			name:     "clamped from the right",
			rect:     NewRect(95, 40, 20, 20),
			expected: NewRect(80, 40, 20, 20),
			ok:       true,
		},
		{
			name:     "clamped on both axes",
			rect:     NewRect(-5, 120, 20, 20),
			expected: NewRect(0, 80, 20, 20),
			ok:       true,
		},
		{
			name: "too wide to fit",
			rect: NewRect(0, 0, 150, 20),
			ok:   false,
		},
		{
			name: "too tall to fit",
			rect: NewRect(0, 0, 20, 150),
			ok:   false,
		},
		{
			name:     "exact fit",
			rect:     NewRect(40, -10, 100, 100),
			expected: NewRect(0, 0, 100, 100),
			ok:       true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := tc.rect.MoveInside(bound)
			if ok != tc.ok {
				t.Fatalf("MoveInside() ok = %v, expected %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if result != tc.expected {
				t.Errorf("MoveInside() = %+v, expected %+v", result, tc.expected)
			}
			if !bound.Contains(result) {
				t.Errorf("MoveInside() result %+v not contained in bound", result)
			}
			if result.W != tc.rect.W || result.H != tc.rect.H {
				t.Errorf("MoveInside() changed size: got %+v", result)
			}
		})
	}
}

// MoveInside succeeds exactly when the rectangle fits inside the bound,
// and the result always lands inside the bound.
func TestRectMoveInsideFitsIffSmaller(t *testing.T) {
	bound := NewRect(10, 20, 60, 40)

	for _, w := range []float64{0, 1, 59, 60, 61, 200} {
		for _, h := range []float64{0, 1, 39, 40, 41, 200} {
			r := NewRect(-500, 500, w, h)
			moved, ok := r.MoveInside(bound)

			wantOK := w <= bound.W && h <= bound.H
			if ok != wantOK {
				t.Errorf("MoveInside(%gx%g) ok = %v, expected %v", w, h, ok, wantOK)
				continue
			}
			if ok && !bound.Contains(moved) {
				t.Errorf("MoveInside(%gx%g) = %+v escapes bound", w, h, moved)
			}
		}
	}
}
