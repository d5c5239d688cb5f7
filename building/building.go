package building

import (
	"fmt"

	"github.com/dandesousa/elevator-simulation/types"
)

// Floor is a 1-based level. The zero value is not a floor.
type Floor int

func (floor Floor) Level() int {
	return int(floor)
}

func (floor Floor) Distance(other Floor) int {
	if floor > other {
		return int(floor - other)
	}
	return int(other - floor)
}

// Direction is the way to travel from floor to other, Idle for the same floor.
func (floor Floor) Direction(other Floor) types.Direction {
	switch {
	case other > floor:
		return types.Up
	case other < floor:
		return types.Down
	default:
		return types.Idle
	}
}

func (floor Floor) String() string {
	return fmt.Sprintf("floor %d", int(floor))
}

/*
 * Floors are numbered 1..N in the order they were added
 */
type Building struct {
	floors []Floor
}

func New(numFloors int) *Building {
	b := &Building{}
	for i := 0; i < numFloors; i++ {
		b.AddFloor(0)
	}
	return b
}

// AddFloor appends a floor. The hint is ignored, the level is always len+1.
func (b *Building) AddFloor(hint Floor) Floor {
	floor := Floor(len(b.floors) + 1)
	b.floors = append(b.floors, floor)
	return floor
}

func (b *Building) Floors() []Floor {
	floors := make([]Floor, len(b.floors))
	copy(floors, b.floors)
	return floors
}

func (b *Building) NumFloors() int {
	return len(b.floors)
}

func (b *Building) Floor(level int) (Floor, error) {
	if level < 1 || level > len(b.floors) {
		return 0, fmt.Errorf("level %d of %d: %w", level, len(b.floors), types.ErrInvalidFloor)
	}
	return b.floors[level-1], nil
}

func (b *Building) Contains(floor Floor) bool {
	return floor >= 1 && int(floor) <= len(b.floors)
}

func (b *Building) Ground() Floor {
	return b.floors[0]
}

func (b *Building) Top() Floor {
	return b.floors[len(b.floors)-1]
}
