package pslg

import (
	"testing"

	"github.com/arvidw/geotri/algorithm/polygon"
	"github.com/arvidw/geotri/types"
)

func TestLoopSelfIntersections(t *testing.T) {
	loop := []types.Point{
		{X: 0, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
		{X: 2, Y: 0},
	}

	err := LoopSelfIntersections(loop)
	if err == nil {
		t.Fatalf("expected self-intersection to be detected")
	}
}

func TestLoopsIntersectHoleInsideOuterIsFine(t *testing.T) {
	outer := []types.Point{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 5, Y: 5},
		{X: 0, Y: 5},
	}

	hole := []types.Point{
		{X: 3, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 3},
		{X: 3, Y: 3},
	}

	if polygon.SignedArea(hole) >= 0 {
		t.Fatalf("test setup error: hole must be CW")
	}

	if err := LoopsIntersect(outer, hole); err != nil {
		t.Fatalf("expected loops not to cross, got %v", err)
	}
}

func TestLoopsIntersectDetectsOverlappingHoles(t *testing.T) {
	holeA := []types.Point{
		{X: 4, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 6},
		{X: 4, Y: 6},
	}
	holeB := []types.Point{
		{X: 9, Y: 2},
		{X: 3, Y: 2},
		{X: 3, Y: 4},
		{X: 9, Y: 4},
	}

	if err := LoopsIntersect(holeA, holeB); err == nil {
		t.Fatalf("expected validation to fail for overlapping holes")
	}
}
