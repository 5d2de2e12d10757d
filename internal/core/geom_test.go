package core

import "testing"

func TestRect(t *testing.T) {
	r := NewRect(4, 2, 10, 6)
	if r.Right() != 14 || r.Bottom() != 8 {
		t.Fatalf("edges = (%d,%d), expected (14,8)", r.Right(), r.Bottom())
	}

	tests := []struct {
		x, y int
		in   bool
	}{
		{4, 2, true},
		{13, 7, true},
		{14, 7, false},
		{13, 8, false},
		{3, 2, false},
		{4, 1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.in {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.in)
		}
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"fits", NewRect(0, 0, 80, 24), 30, 6, NewRect(25, 9, 30, 6)},
		{"offset", NewRect(10, 5, 20, 10), 10, 4, NewRect(15, 8, 10, 4)},
		{"overhangs", NewRect(0, 0, 10, 4), 14, 6, NewRect(-2, -1, 14, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outer.Centered(tt.w, tt.h); got != tt.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tt.w, tt.h, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-3, 0, 9) != 0 || Clamp(12, 0, 9) != 9 || Clamp(4, 0, 9) != 4 {
		t.Error("Clamp does not limit to [0, 9]")
	}
	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF does not limit to [0, 1]")
	}
}
