package elevator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/types"
)

type Elevator struct {
	ID         int
	UUID       string
	state      State
	floors     []building.Floor
	capacity   int
	passengers map[int]bool
	door       types.DoorState
	timing     types.Timing
}

func InitElevator(
	id int,
	floors []building.Floor,
	config Config,
) (*Elevator, error) {

	if len(floors) == 0 {
		return nil, errors.New("elevator needs at least one floor")
	}

	if config.Capacity < 1 {
		return nil, fmt.Errorf("elevator capacity %d: %w", config.Capacity, types.ErrConfiguration)
	}

	start := config.Start
	if start == 0 {
		start = floors[0]
	}

	elevator := Elevator{
		ID:         id,
		floors:     append([]building.Floor(nil), floors...),
		capacity:   config.Capacity,
		passengers: make(map[int]bool),
		timing:     config.Timing,
		state: State{
			Location:  start,
			Direction: types.Idle,
			Behaviour: types.EB_Idle,
			Stops:     make(map[building.Floor]bool),
			TopFloor:  floors[len(floors)-1],
		},
	}

	if !elevator.Serves(start) {
		return nil, fmt.Errorf("starting %s: %w", start, types.ErrInvalidFloor)
	}

	return &elevator, nil
}

// State returns the movement state. The Stops map is shared with the elevator.
func (e *Elevator) State() State {
	return e.state
}

func (e *Elevator) Location() building.Floor {
	return e.state.Location
}

func (e *Elevator) SetLocation(floor building.Floor) error {
	if !e.Serves(floor) {
		return fmt.Errorf("elevator %d to %s: %w", e.ID, floor, types.ErrInvalidFloor)
	}
	e.state.Location = floor
	return nil
}

func (e *Elevator) Direction() types.Direction {
	return e.state.Direction
}

func (e *Elevator) SetDirection(dirn types.Direction) error {
	if !dirn.Valid() {
		return fmt.Errorf("elevator %d: %w: %d", e.ID, types.ErrInvalidDirection, int(dirn))
	}
	e.state.Direction = dirn
	return nil
}

func (e *Elevator) Behaviour() types.ElevBehaviour {
	return e.state.Behaviour
}

func (e *Elevator) SetBehaviour(behaviour types.ElevBehaviour) {
	e.state.Behaviour = behaviour
}

func (e *Elevator) Floors() []building.Floor {
	return e.floors
}

func (e *Elevator) Serves(floor building.Floor) bool {
	for _, f := range e.floors {
		if f == floor {
			return true
		}
	}
	return false
}

func (e *Elevator) Timing() types.Timing {
	return e.timing
}

func (e *Elevator) NextLocation() building.Floor {
	return e.state.NextLocation()
}

func (e *Elevator) MovingAway(floor building.Floor) bool {
	return e.state.MovingAway(floor)
}

func (e *Elevator) Distance(floor building.Floor) int {
	return e.state.Location.Distance(floor)
}

/*
 * Stops
 */

func (e *Elevator) Stops() []building.Floor {
	return e.state.SortedStops()
}

func (e *Elevator) HasStop(floor building.Floor) bool {
	return e.state.Stops[floor]
}

func (e *Elevator) AddStop(floor building.Floor) error {
	if !e.Serves(floor) {
		return fmt.Errorf("elevator %d stop at %s: %w", e.ID, floor, types.ErrInvalidFloor)
	}
	e.state.Stops[floor] = true
	return nil
}

func (e *Elevator) RemoveStop(floor building.Floor) error {
	if !e.state.Stops[floor] {
		return fmt.Errorf("elevator %d at %s: %w", e.ID, floor, types.ErrInvalidStopRemoval)
	}
	delete(e.state.Stops, floor)
	return nil
}

/*
 * Doors and passengers
 */

func (e *Elevator) Door() types.DoorState {
	return e.door
}

func (e *Elevator) OpenDoors() {
	e.door = types.DS_Open
}

func (e *Elevator) CloseDoors() {
	e.door = types.DS_Closed
}

func (e *Elevator) Capacity() int {
	return e.capacity
}

func (e *Elevator) Load() int {
	return len(e.passengers)
}

func (e *Elevator) Full() bool {
	return len(e.passengers) >= e.capacity
}

func (e *Elevator) Carries(person int) bool {
	return e.passengers[person]
}

func (e *Elevator) Passengers() []int {
	passengers := make([]int, 0, len(e.passengers))
	for person := range e.passengers {
		passengers = append(passengers, person)
	}
	sort.Ints(passengers)
	return passengers
}

func (e *Elevator) Enter(person int) error {
	switch {
	case e.door != types.DS_Open:
		return fmt.Errorf("person %d entering elevator %d: %w", person, e.ID, types.ErrDoorsClosed)
	case e.passengers[person]:
		return fmt.Errorf("person %d in elevator %d: %w", person, e.ID, types.ErrAlreadyAboard)
	case e.Full():
		return fmt.Errorf("person %d entering elevator %d: %w", person, e.ID, types.ErrCapacityExceeded)
	}

	e.passengers[person] = true
	return nil
}

func (e *Elevator) Exit(person int) error {
	switch {
	case e.door != types.DS_Open:
		return fmt.Errorf("person %d leaving elevator %d: %w", person, e.ID, types.ErrDoorsClosed)
	case !e.passengers[person]:
		return fmt.Errorf("person %d in elevator %d: %w", person, e.ID, types.ErrNotAboard)
	}

	delete(e.passengers, person)
	return nil
}
