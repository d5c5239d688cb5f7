package bank

import (
	"fmt"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elev"
	"github.com/dandesousa/elevator-simulation/kernel"
	"github.com/dandesousa/elevator-simulation/types"
)

type callKey struct {
	floor building.Floor
	dirn  types.Direction
}

type waiter struct {
	person int
	banks  map[int]bool
	order  uint64
}

/*
 * Hall keeps the people waiting at each floor and direction, shared by
 * every bank of a building. Its events fire when an elevator opens its
 * doors at a floor and is about to leave in that direction.
 */
type Hall struct {
	events  map[callKey]*kernel.Event[*elev.Agent]
	waiting map[callKey][]waiter
	seq     uint64
}

func NewHall() *Hall {
	return &Hall{
		events:  make(map[callKey]*kernel.Event[*elev.Agent]),
		waiting: make(map[callKey][]waiter),
	}
}

func (h *Hall) event(floor building.Floor, dirn types.Direction) *kernel.Event[*elev.Agent] {
	key := callKey{floor: floor, dirn: dirn}

	event, ok := h.events[key]
	if !ok {
		event = kernel.NewEvent[*elev.Agent](fmt.Sprintf("hall.%d.%s", floor.Level(), dirn))
		h.events[key] = event
	}

	return event
}

// Wait registers person as waiting at floor for dirn, having called banks.
func (h *Hall) Wait(floor building.Floor, dirn types.Direction, person int, banks []int) {
	key := callKey{floor: floor, dirn: dirn}

	called := make(map[int]bool, len(banks))
	for _, bank := range banks {
		called[bank] = true
	}

	h.seq++
	h.waiting[key] = append(h.waiting[key], waiter{person: person, banks: called, order: h.seq})
}

func (h *Hall) Leave(floor building.Floor, dirn types.Direction, person int) {
	key := callKey{floor: floor, dirn: dirn}

	waiters := h.waiting[key]
	for i, w := range waiters {
		if w.person == person {
			h.waiting[key] = append(waiters[:i], waiters[i+1:]...)
			break
		}
	}

	if len(h.waiting[key]) == 0 {
		delete(h.waiting, key)
	}
}

// Next returns a future completed with the elevator whose doors open next at floor going dirn.
func (h *Hall) Next(floor building.Floor, dirn types.Direction) *kernel.Future[*elev.Agent] {
	return h.event(floor, dirn).Next()
}

func (h *Hall) Waiting(floor building.Floor, dirn types.Direction) int {
	return len(h.waiting[callKey{floor: floor, dirn: dirn}])
}

// PendingFor reports whether anyone waiting at floor for dirn called bank.
func (h *Hall) PendingFor(floor building.Floor, dirn types.Direction, bank int) bool {
	for _, w := range h.waiting[callKey{floor: floor, dirn: dirn}] {
		if w.banks[bank] {
			return true
		}
	}
	return false
}

// OldestDirection is the direction of the longest waiting person at floor, Idle if nobody waits.
func (h *Hall) OldestDirection(floor building.Floor) types.Direction {
	oldest := types.Idle
	var oldestOrder uint64

	for _, dirn := range []types.Direction{types.Up, types.Down} {
		waiters := h.waiting[callKey{floor: floor, dirn: dirn}]
		if len(waiters) == 0 {
			continue
		}
		if oldest == types.Idle || waiters[0].order < oldestOrder {
			oldest = dirn
			oldestOrder = waiters[0].order
		}
	}

	return oldest
}

func (h *Hall) Announce(floor building.Floor, dirn types.Direction, agent *elev.Agent) {
	h.event(floor, dirn).Fire(agent)
}
