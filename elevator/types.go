package elevator

import (
	"sort"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/types"
)

type Config struct {
	Capacity int
	Start    building.Floor
	Timing   types.Timing
}

/*
 * Movement state of an elevator. Dispatch strategies and the cost
 * function read it; only the owning elevator writes it.
 */
type State struct {
	Location  building.Floor
	Direction types.Direction
	Behaviour types.ElevBehaviour
	Stops     map[building.Floor]bool
	TopFloor  building.Floor
}

// NextLocation is where one more floor of travel leads, clamped to the building.
func (s State) NextLocation() building.Floor {
	next := s.Location + building.Floor(s.Direction)
	if next < 1 {
		return 1
	}
	if next > s.TopFloor {
		return s.TopFloor
	}
	return next
}

func (s State) MovingAway(floor building.Floor) bool {
	return s.NextLocation().Distance(floor) > s.Location.Distance(floor)
}

// MovingTowards reports whether one more floor of travel strictly shortens the way to floor.
func (s State) MovingTowards(floor building.Floor) bool {
	return s.NextLocation().Distance(floor) < s.Location.Distance(floor)
}

func (s State) HasStops() bool {
	return len(s.Stops) > 0
}

func (s State) SortedStops() []building.Floor {
	stops := make([]building.Floor, 0, len(s.Stops))
	for floor, active := range s.Stops {
		if active {
			stops = append(stops, floor)
		}
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i] < stops[j] })
	return stops
}
