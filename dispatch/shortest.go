package dispatch

import (
	"time"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/fsm"
	"github.com/dandesousa/elevator-simulation/types"
)

// ShortestTime picks the elevator expected to open its doors at the floor first.
type ShortestTime struct{}

func (ShortestTime) Dispatch(
	elevators []*elevator.Elevator,
	floors []building.Floor,
	floor building.Floor,
	dirn types.Direction,
) *elevator.Elevator {

	var best *elevator.Elevator
	var bestTime time.Duration

	for _, e := range elevators {
		timeToServe, err := fsm.TimeToServe(e.State(), e.Timing(), floor)
		if err != nil {
			continue
		}

		if best == nil || timeToServe < bestTime {
			best = e
			bestTime = timeToServe
		}
	}

	if best == nil {
		return Nearest{}.Dispatch(elevators, floors, floor, dirn)
	}

	return best
}
