package world

import "testing"

func TestLineExcludesStartIncludesEnd(t *testing.T) {
	tests := []struct {
		a, b Point
		want []Point
	}{
		{Pt(0, 0), Pt(3, 0), []Point{{1, 0}, {2, 0}, {3, 0}}},
		{Pt(0, 0), Pt(0, -2), []Point{{0, -1}, {0, -2}}},
		{Pt(0, 0), Pt(2, 2), []Point{{1, 1}, {2, 2}}},
		{Pt(4, 4), Pt(4, 4), []Point{{4, 4}}},
	}

	for _, tt := range tests {
		got := Line(tt.a, tt.b)
		if len(got) != len(tt.want) {
			t.Fatalf("Line(%v,%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Line(%v,%v)[%d] = %v, want %v", tt.a, tt.b, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLineStepsAreAdjacent(t *testing.T) {
	a, b := Pt(1, 2), Pt(9, 5)
	prev := a
	for _, p := range Line(a, b) {
		if abs(p.X-prev.X) > 1 || abs(p.Y-prev.Y) > 1 {
			t.Fatalf("step from %v to %v is not adjacent", prev, p)
		}
		prev = p
	}
	if prev != b {
		t.Errorf("line ended at %v, want %v", prev, b)
	}
}

func TestSquare(t *testing.T) {
	if got := len(Square(Pt(0, 0), 1)); got != 9 {
		t.Errorf("Square radius 1 has %d tiles, want 9", got)
	}
	if got := len(Square(Pt(0, 0), 0)); got != 1 {
		t.Errorf("Square radius 0 has %d tiles, want 1", got)
	}
}
