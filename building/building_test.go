package building

import (
	"errors"
	"testing"

	"github.com/dandesousa/elevator-simulation/types"
)

func TestAddFloorAssignsLevelsInInsertionOrder(t *testing.T) {
	b := &Building{}

	for i, hint := range []Floor{7, 0, 3, 3} {
		floor := b.AddFloor(hint)
		if floor.Level() != i+1 {
			t.Errorf("Expected level %d for hint %d, got %d", i+1, hint, floor.Level())
		}
	}

	if b.NumFloors() != 4 {
		t.Errorf("Expected 4 floors, got %d", b.NumFloors())
	}
	if b.Ground() != 1 || b.Top() != 4 {
		t.Errorf("Expected floors 1..4, got %d..%d", b.Ground(), b.Top())
	}
}

func TestFloorDistanceAndDirection(t *testing.T) {
	cases := []struct {
		from, to  Floor
		distance  int
		direction types.Direction
	}{
		{1, 10, 9, types.Up},
		{10, 1, 9, types.Down},
		{5, 5, 0, types.Idle},
		{2, 3, 1, types.Up},
	}

	for _, c := range cases {
		if d := c.from.Distance(c.to); d != c.distance {
			t.Errorf("Expected distance %d from %d to %d, got %d", c.distance, c.from, c.to, d)
		}
		if d := c.to.Distance(c.from); d != c.distance {
			t.Errorf("Expected symmetric distance %d, got %d", c.distance, d)
		}
		if dir := c.from.Direction(c.to); dir != c.direction {
			t.Errorf("Expected direction %s from %d to %d, got %s", c.direction, c.from, c.to, dir)
		}
	}
}

func TestFloorLookup(t *testing.T) {
	b := New(5)

	floor, err := b.Floor(3)
	if err != nil || floor != 3 {
		t.Errorf("Expected floor 3, got %d (%v)", floor, err)
	}

	for _, level := range []int{0, 6, -1} {
		if _, err := b.Floor(level); !errors.Is(err, types.ErrInvalidFloor) {
			t.Errorf("Expected ErrInvalidFloor for level %d, got %v", level, err)
		}
	}

	if b.Contains(0) || b.Contains(6) || !b.Contains(5) {
		t.Errorf("Expected Contains to accept exactly 1..5")
	}
}
