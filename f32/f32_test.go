// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"testing"
)

func TestRectangleContains(t *testing.T) {
	r := Rectangle{X: 10, Y: 10, Width: 20, Height: 5}
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(30, 15), true},
		{Pt(20, 12), true},
		{Pt(9.5, 12), false},
		{Pt(20, 15.5), false},
		{Pt(-1, -1), false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.p, got, tc.want)
		}
	}
}

func TestRectangleIntersect(t *testing.T) {
	a := Rectangle{Width: 10, Height: 10}
	b := Rectangle{X: 5, Y: 5, Width: 10, Height: 10}
	got, ok := a.Intersect(b)
	if !ok || got != (Rectangle{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Errorf("intersection mismatch: have %v (%v)", got, ok)
	}
	if _, ok := a.Intersect(Rectangle{X: 20, Width: 1, Height: 1}); ok {
		t.Error("disjoint rectangles intersect")
	}
	if u := a.Union(b); u != (Rectangle{Width: 15, Height: 15}) {
		t.Errorf("union mismatch: have %v", u)
	}
}

func TestSizeSubSaturates(t *testing.T) {
	if got := Sz(3, 10).Sub(Sz(5, 4)); got != Sz(0, 6) {
		t.Errorf("have %v, want 0x6", got)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2).Add(Vector{X: 2, Y: -3})
	if p != Pt(3, -1) {
		t.Errorf("offset mismatch: have %v, want (3,-1)", p)
	}
	if v := p.Sub(Pt(1, 2)); v != (Vector{X: 2, Y: -3}) {
		t.Errorf("difference mismatch: have %v", v)
	}
}
