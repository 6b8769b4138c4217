package model

import "testing"

func TestManhattanSpace(t *testing.T) {
	tests := []struct {
		a, b SpacePoint
		want int
	}{
		{SpacePoint{0, 0}, SpacePoint{4, 5}, 9},
		{SpacePoint{3, 3}, SpacePoint{3, 3}, 0},
		{SpacePoint{5, 0}, SpacePoint{2, 0}, 3},
	}
	for _, tt := range tests {
		if got := ManhattanSpace(tt.a, tt.b); got != tt.want {
			t.Errorf("ManhattanSpace(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDirectionBetween(t *testing.T) {
	tests := []struct {
		a, b SpacePoint
		want Direction
	}{
		{SpacePoint{0, 0}, SpacePoint{1, 0}, Right},
		{SpacePoint{1, 0}, SpacePoint{0, 0}, Left},
		{SpacePoint{0, 0}, SpacePoint{0, 1}, Down},
		{SpacePoint{0, 1}, SpacePoint{0, 0}, Up},
		{SpacePoint{2, 2}, SpacePoint{2, 2}, Stay},
	}
	for _, tt := range tests {
		if got := DirectionBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("DirectionBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
