package dispatch

import (
	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/types"
)

/*
 * Nearest picks the elevator with the highest suitability. Ties go to
 * the elevator listed first.
 */
type Nearest struct{}

func Suitability(
	e *elevator.Elevator,
	numFloors int,
	floor building.Floor,
	dirn types.Direction,
) int {

	distance := e.Distance(floor)

	switch {
	case e.MovingAway(floor) && distance > 0:
		return 1
	case e.Direction() == dirn || e.Direction() == types.Idle:
		return numFloors + 2 - distance
	default:
		return numFloors + 1 - distance
	}
}

func (Nearest) Dispatch(
	elevators []*elevator.Elevator,
	floors []building.Floor,
	floor building.Floor,
	dirn types.Direction,
) *elevator.Elevator {

	var best *elevator.Elevator
	bestScore := 0

	for _, e := range elevators {
		score := Suitability(e, len(floors), floor, dirn)
		if best == nil || score > bestScore {
			best = e
			bestScore = score
		}
	}

	return best
}
