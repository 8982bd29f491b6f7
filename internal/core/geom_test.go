package core

import "testing"

func TestVec2Add(t *testing.T) {
	v := Vec2{X: 1.5, Y: -2}.Add(Vec2{X: 0.5, Y: 3})
	if v.X != 2 || v.Y != 1 {
		t.Errorf("Add() = %+v, expected {2 1}", v)
	}
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{X: 2, Y: -3}.Scale(1.5)
	if v.X != 3 || v.Y != -4.5 {
		t.Errorf("Scale() = %+v, expected {3 -4.5}", v)
	}
}

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{name: "inside", r: NewRect(0, 0, 10, 10), x: 5, y: 5, expected: true},
		{name: "top-left corner", r: NewRect(0, 0, 10, 10), x: 0, y: 0, expected: true},
		{name: "right edge exclusive", r: NewRect(0, 0, 10, 10), x: 10, y: 5, expected: false},
		{name: "bottom edge exclusive", r: NewRect(0, 0, 10, 10), x: 5, y: 10, expected: false},
		{name: "outside", r: NewRect(2, 2, 3, 3), x: 0, y: 0, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		expected      int
	}{
		{name: "below min", val: -5, min: 0, max: 10, expected: 0},
		{name: "above max", val: 15, min: 0, max: 10, expected: 10},
		{name: "in range", val: 5, min: 0, max: 10, expected: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.2, 0, 0.1); got != 0.1 {
		t.Errorf("ClampF(0.2, 0, 0.1) = %v, expected 0.1", got)
	}
	if got := ClampF(-1, 0, 0.1); got != 0 {
		t.Errorf("ClampF(-1, 0, 0.1) = %v, expected 0", got)
	}
}
