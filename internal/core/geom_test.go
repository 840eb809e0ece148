package core

import "testing"

func TestPositionAdd(t *testing.T) {
	tests := []struct {
		name     string
		p, d     Position
		expected Position
	}{
		{"zero delta", Pos(3, 4), Pos(0, 0), Pos(3, 4)},
		{"move left", Pos(3, 4), Pos(-1, 0), Pos(2, 4)},
		{"move down", Pos(3, 4), Pos(0, 1), Pos(3, 5)},
		{"diagonal", Pos(0, 0), Pos(-2, 2), Pos(-2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.p.Add(tc.d)
			if result != tc.expected {
				t.Errorf("Add() = %v, expected %v", result, tc.expected)
			}
			if back := result.Sub(tc.d); back != tc.p {
				t.Errorf("Sub() = %v, expected %v", back, tc.p)
			}
		})
	}
}

func TestTranslateDoesNotAlias(t *testing.T) {
	cells := []Position{Pos(0, 0), Pos(1, 0)}
	moved := Translate(cells, Pos(1, 1))

	if moved[0] != Pos(1, 1) || moved[1] != Pos(2, 1) {
		t.Errorf("Translate() = %v", moved)
	}
	if cells[0] != Pos(0, 0) {
		t.Error("Translate() must not modify its input")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},      // within range
		{-5, 0, 10, 0},     // below min
		{15, 0, 10, 10},    // above max
		{136, 0, 128, 128}, // volume overshoot
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{4, 4, 0},
		{-5, 4, 3},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}
