package bank

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/dispatch"
	"github.com/dandesousa/elevator-simulation/elev"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/ident"
	"github.com/dandesousa/elevator-simulation/kernel"
	"github.com/dandesousa/elevator-simulation/types"

	"github.com/rs/zerolog"
)

func newTestBank(t *testing.T, numFloors int, starts ...building.Floor) (*kernel.Kernel, *Hall, *Bank) {
	t.Helper()

	k := kernel.New(zerolog.Nop())
	hall := NewHall()
	ids := ident.NewIssuer()
	b := New(k, hall, ids, ids.Issue(ident.BANK), building.New(numFloors).Floors(), dispatch.Nearest{}, zerolog.Nop())

	for _, start := range starts {
		_, err := b.AddElevator(elevator.Config{
			Capacity: 10,
			Start:    start,
			Timing:   types.DefaultTiming(),
		}, "")
		if err != nil {
			t.Fatalf("AddElevator failed: %v", err)
		}
	}

	return k, hall, b
}

/*
 * Registers person as waiting and spawns a process that leaves the hall
 * on the first announcement at floor and dirn
 */
func awaitHall(k *kernel.Kernel, hall *Hall, b *Bank, person int, floor building.Floor, dirn types.Direction, at *time.Duration, by **elev.Agent) {
	hall.Wait(floor, dirn, person, []int{b.ID})

	var future *kernel.Future[*elev.Agent]
	k.Spawn("waiter", kernel.ProcessFunc(func(k *kernel.Kernel) kernel.Condition {
		if future == nil {
			future = hall.Next(floor, dirn)
			return kernel.Await(future)
		}
		hall.Leave(floor, dirn, person)
		*at = k.Now()
		*by = future.Value()
		return kernel.Done
	}))
}

func TestCallValidation(t *testing.T) {
	_, _, b := newTestBank(t, 5)

	if _, err := b.Call(2, types.Up); !errors.Is(err, ErrNoElevators) {
		t.Errorf("Expected ErrNoElevators, got %v", err)
	}

	_, _, b = newTestBank(t, 5, 1)

	if _, err := b.Call(6, types.Up); !errors.Is(err, types.ErrInvalidFloor) {
		t.Errorf("Expected ErrInvalidFloor, got %v", err)
	}
	if _, err := b.Call(3, types.Idle); !errors.Is(err, types.ErrInvalidDirection) {
		t.Errorf("Expected ErrInvalidDirection, got %v", err)
	}
}

func TestCallUsesStrategy(t *testing.T) {
	_, _, b := newTestBank(t, 10, 1, 5)

	agent, err := b.Call(7, types.Down)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if agent != b.Elevators()[1] {
		t.Errorf("Expected the elevator at floor 5, got elevator %d", agent.ID())
	}
	if !agent.Model().HasStop(7) {
		t.Errorf("Expected stop at 7")
	}
	if b.Calls() != 1 {
		t.Errorf("Expected 1 call, got %d", b.Calls())
	}
}

func TestDoorsOpenedAnnouncesToHall(t *testing.T) {
	k, hall, b := newTestBank(t, 5, 1)

	var at time.Duration
	var by *elev.Agent
	awaitHall(k, hall, b, 7, 3, types.Up, &at, &by)

	if _, err := b.Call(3, types.Up); err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	if err := k.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	timing := types.DefaultTiming()
	if expected := 2*timing.Travel + timing.Open; at != expected {
		t.Errorf("Expected announcement at %s, got %s", expected, at)
	}
	if by != b.Elevators()[0] {
		t.Errorf("Expected announcement from the bank's elevator")
	}
}

func TestUnservedCallIsDispatchedAgainOnDeparture(t *testing.T) {
	k, hall, b := newTestBank(t, 5, 1)

	var at time.Duration
	var by *elev.Agent
	awaitHall(k, hall, b, 7, 3, types.Down, &at, &by)

	if _, err := b.Call(3, types.Down); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if err := b.Elevators()[0].AddStop(5); err != nil {
		t.Fatalf("AddStop failed: %v", err)
	}

	if err := k.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if at != 77*time.Second {
		t.Errorf("Expected the down call to be served on the way back at 77s, got %s", at)
	}
	if b.Calls() != 2 {
		t.Errorf("Expected the call to be dispatched twice, got %d", b.Calls())
	}
}

func TestAddElevatorAfterStart(t *testing.T) {
	k, _, b := newTestBank(t, 5, 1)

	if err := k.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := b.AddElevator(elevator.Config{Capacity: 1}, ""); !errors.Is(err, types.ErrStarted) {
		t.Errorf("Expected ErrStarted, got %v", err)
	}
}

func TestHallOldestDirection(t *testing.T) {
	hall := NewHall()

	if dirn := hall.OldestDirection(4); dirn != types.Idle {
		t.Errorf("Expected idle with nobody waiting, got %s", dirn)
	}

	hall.Wait(4, types.Down, 1, []int{0})
	hall.Wait(4, types.Up, 2, []int{0})

	if dirn := hall.OldestDirection(4); dirn != types.Down {
		t.Errorf("Expected down, got %s", dirn)
	}

	hall.Leave(4, types.Down, 1)
	if dirn := hall.OldestDirection(4); dirn != types.Up {
		t.Errorf("Expected up after the down waiter left, got %s", dirn)
	}
	if hall.PendingFor(4, types.Up, 1) || !hall.PendingFor(4, types.Up, 0) {
		t.Errorf("Expected the up call to be pending for bank 0 only")
	}
}
