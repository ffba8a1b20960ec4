package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 4, 4), NewRect(2, 2, 4, 4), true},
		{"touching edges", NewRect(0, 0, 4, 4), NewRect(4, 0, 4, 4), false},
		{"contained", NewRect(0, 0, 10, 10), NewRect(3, 3, 2, 2), true},
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(5, 5, 2, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(6, 3) {
		t.Error("exclusive right edge should be outside")
	}
	if r.Contains(2, 8) {
		t.Error("exclusive bottom edge should be outside")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15,0,10) = %d", got)
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5,0,1) = %f", got)
	}
}

func TestManhattan(t *testing.T) {
	if got := Manhattan(0, 0, 3, 4); got != 7 {
		t.Errorf("Manhattan(0,0,3,4) = %d, want 7", got)
	}
	if got := Manhattan(3, 4, 0, 0); got != 7 {
		t.Errorf("Manhattan should be symmetric, got %d", got)
	}
	if got := Manhattan(2, 2, 2, 2); got != 0 {
		t.Errorf("Manhattan at same point = %d, want 0", got)
	}
}
