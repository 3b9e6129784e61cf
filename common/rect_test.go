package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 4, Height: 4}, true},
		{"touching_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
		{"vertical_miss", Rect{X: 0, Y: 15, Width: 10, Height: 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(&c.other); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
			if got := c.other.Intersects(&base); got != c.want {
				t.Fatalf("Intersects should be symmetric")
			}
		})
	}
}

func TestLerpClamp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0,10,0.5) = %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Fatalf("Clamp high = %v", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Fatalf("Clamp low = %v", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Fatalf("Clamp mid = %v", got)
	}
}
