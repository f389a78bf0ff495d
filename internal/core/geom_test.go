package core

import "testing"

func TestRectIntersects(t *testing.T) {
	player := NewRect(100, 368, 32, 32)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"standing on ground", NewRect(0, 400, 800, 40), false},
		{"sunk one pixel into ground", NewRect(0, 399, 800, 40), true},
		{"wall touching right side", NewRect(132, 300, 20, 100), false},
		{"coin inside", NewRect(108, 376, 16, 16), true},
		{"far away", NewRect(500, 100, 20, 20), false},
		{"fractional corner overlap", NewRect(131.5, 399.5, 10, 10), true},
		{"zero width at edge", NewRect(100, 368, 0, 32), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects() = %v, want %v", got, tc.want)
			}
			if got := tc.other.Intersects(player); got != tc.want {
				t.Errorf("Intersects() is not symmetric")
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(-10, 5, 20, 10)

	points := []struct {
		x, y float64
		want bool
	}{
		{0, 10, true},
		{-10, 5, true},
		{10, 10, false}, // right edge
		{0, 15, false},  // bottom edge
		{-10.5, 10, false},
	}
	for _, p := range points {
		if got := r.Contains(p.x, p.y); got != p.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", p.x, p.y, got, p.want)
		}
	}
}

func TestRectEdgesAndInflate(t *testing.T) {
	r := NewRect(5, 10, 20, 16)

	if r.Right() != 25 || r.Bottom() != 26 {
		t.Errorf("edges = %v, %v; want 25, 26", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 15 || y != 18 {
		t.Errorf("Center() = %v, %v; want 15, 18", x, y)
	}

	if big := r.Inflate(10); big != NewRect(-5, 0, 40, 36) {
		t.Errorf("Inflate(10) = %+v", big)
	}
	if small := r.Inflate(-2); small != NewRect(7, 12, 16, 12) {
		t.Errorf("Inflate(-2) = %+v", small)
	}
}

func TestClamp(t *testing.T) {
	floats := []struct {
		v, lo, hi, want float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
		{10, 0, 10, 10},
		{3, 8, 2, 8}, // inverted range
	}
	for _, tc := range floats {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}

	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp on ints = %d, want 10", got)
	}
}
