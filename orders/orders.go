package orders

import (
	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/types"
)

/*
 * Reports whether travelling one floor in dirn brings the elevator
 * strictly closer to at least one stop
 */
func stopsAhead(s elevator.State, dirn types.Direction) bool {
	s.Direction = dirn

	for floor, active := range s.Stops {
		if active && s.MovingTowards(floor) {
			return true
		}
	}

	return false
}

func stopsHere(s elevator.State) bool {
	return s.Stops[s.Location]
}

func ShouldStop(s elevator.State) bool {
	return stopsHere(s)
}

/*
 * Keeps the current direction while there is a stop ahead, otherwise turns.
 * An idle elevator prefers going up.
 */
func ChooseDirection(s elevator.State) types.Direction {
	if !s.HasStops() {
		return types.Idle
	}

	switch s.Direction {
	case types.Idle:
		if stopsAhead(s, types.Up) {
			return types.Up
		}
		return types.Down

	default:
		if stopsAhead(s, s.Direction) {
			return s.Direction
		}
		return s.Direction.Opposite()
	}
}

/*
 * Direction the elevator will leave the current floor in once its
 * stop here has been served, Idle if it will park
 */
func IntendedDirection(s elevator.State) types.Direction {
	remaining := make(map[building.Floor]bool, len(s.Stops))
	for floor, active := range s.Stops {
		if active && floor != s.Location {
			remaining[floor] = true
		}
	}
	s.Stops = remaining

	return ChooseDirection(s)
}
