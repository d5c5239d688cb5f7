package sim

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/dispatch"
	"github.com/dandesousa/elevator-simulation/person"
	"github.com/dandesousa/elevator-simulation/telemetry"
	"github.com/dandesousa/elevator-simulation/types"
)

func TestRideToTheTopFloor(t *testing.T) {
	collector := &telemetry.Collector{}
	s, err := New(10, WithSink(collector))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	b, err := s.AddBank(dispatch.Nearest{}, "")
	if err != nil {
		t.Fatalf("AddBank failed: %v", err)
	}
	car, err := b.AddElevator(s.ElevatorConfig(10, 1), "")
	if err != nil {
		t.Fatalf("AddElevator failed: %v", err)
	}

	p, err := s.AddPerson(person.CallAll{}, "")
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}
	p.Schedule.Add(0, 10, "start work")

	timing := s.Timing()
	var visited []int
	car.Arrived.Subscribe(func(floor building.Floor) {
		visited = append(visited, floor.Level())

		level := int((s.Now()-timing.DoorCycle())/timing.Travel) + 1
		if level != floor.Level() {
			t.Errorf("Expected floor %d at %s, got %d", level, s.Now(), floor.Level())
		}
	})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(visited) != 9 {
		t.Fatalf("Expected floors 2..10, got %v", visited)
	}
	for i, level := range visited {
		if level != i+2 {
			t.Errorf("Expected floors 2..10 in order, got %v", visited)
			break
		}
	}

	if len(collector.Trips) != 1 || collector.Trips[0].Destination != 10 {
		t.Errorf("Expected exactly one trip to 10, got %+v", collector.Trips)
	}
}

func TestInvalidBuilding(t *testing.T) {
	if _, err := New(0); !errors.Is(err, types.ErrConfiguration) {
		t.Errorf("Expected configuration error, got %v", err)
	}
}

func TestNothingCanBeAddedOnceStarted(t *testing.T) {
	s, _ := New(3)
	s.RunUntil(context.Background(), time.Minute)

	if _, err := s.AddBank(nil, ""); !errors.Is(err, types.ErrStarted) {
		t.Errorf("Expected ErrStarted for a bank, got %v", err)
	}
	if _, err := s.AddPerson(nil, ""); !errors.Is(err, types.ErrStarted) {
		t.Errorf("Expected ErrStarted for a person, got %v", err)
	}
}

/*
 * Builds a busy building with random schedules from seed
 */
func busyBuilding(t *testing.T, seed int64, collector *telemetry.Collector) *Simulation {
	t.Helper()

	s, err := New(12, WithSeed(seed), WithSink(collector))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, strategy := range []dispatch.Strategy{dispatch.Nearest{}, dispatch.ShortestTime{}} {
		b, err := s.AddBank(strategy, "")
		if err != nil {
			t.Fatalf("AddBank failed: %v", err)
		}
		for i := 0; i < 3; i++ {
			if _, err := b.AddElevator(s.ElevatorConfig(4, building.Floor(1+4*i)), ""); err != nil {
				t.Fatalf("AddElevator failed: %v", err)
			}
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 40; i++ {
		var strategy person.CallStrategy = person.CallAll{}
		if i%2 == 1 {
			strategy = person.NewCallRandom(s.Rand())
		}

		p, err := s.AddPerson(strategy, "")
		if err != nil {
			t.Fatalf("AddPerson failed: %v", err)
		}

		start := time.Duration(rng.Intn(600)) * time.Second
		work := building.Floor(2 + rng.Intn(11))
		p.Schedule.Add(start, work, "start work")
		p.Schedule.Add(start+2*time.Hour, 1, "end work")
	}

	return s
}

func TestBusyBuilding(t *testing.T) {
	collector := &telemetry.Collector{}
	s := busyBuilding(t, 42, collector)

	for _, b := range s.Banks() {
		for _, car := range b.Elevators() {
			car := car
			car.DoorsOpened.Subscribe(func(floor building.Floor) {
				model := car.Model()
				if model.Load() > model.Capacity() {
					t.Errorf("Elevator %d over capacity: %d", model.ID, model.Load())
				}
				for _, stop := range model.Stops() {
					if !s.Building.Contains(stop) {
						t.Errorf("Elevator %d holds stop outside the building: %d", model.ID, stop)
					}
				}

				aboard := make(map[int]int)
				for _, other := range s.Banks() {
					for _, o := range other.Elevators() {
						for _, p := range o.Model().Passengers() {
							aboard[p]++
							if aboard[p] > 1 {
								t.Errorf("Person %d aboard two elevators", p)
							}
						}
					}
				}
			})
		}
	}

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(collector.Trips) != 80 {
		t.Errorf("Expected 80 trips, got %d", len(collector.Trips))
	}
	for _, agent := range s.People() {
		if agent.Person().Location() != 1 {
			t.Errorf("Expected person %d back on the ground floor, got %d", agent.Person().ID, agent.Person().Location())
		}
	}
	for _, trip := range collector.Trips {
		if trip.ArrivedAt < trip.CalledAt || trip.Travel <= 0 {
			t.Errorf("Inconsistent trip %+v", trip)
		}
	}
}

func TestRunsAreReproducible(t *testing.T) {
	first := &telemetry.Collector{}
	second := &telemetry.Collector{}

	if err := busyBuilding(t, 7, first).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := busyBuilding(t, 7, second).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(first.Trips) != len(second.Trips) {
		t.Fatalf("Expected the same number of trips, got %d and %d", len(first.Trips), len(second.Trips))
	}
	for i := range first.Trips {
		if first.Trips[i] != second.Trips[i] {
			t.Errorf("Expected identical trip %d, got %+v and %+v", i, first.Trips[i], second.Trips[i])
			break
		}
	}
}

func TestScheduleOutsideTheBuildingIsRejected(t *testing.T) {
	s, _ := New(5)

	b, _ := s.AddBank(dispatch.Nearest{}, "")
	if _, err := b.AddElevator(s.ElevatorConfig(10, 1), ""); err != nil {
		t.Fatalf("AddElevator failed: %v", err)
	}

	p, err := s.AddPerson(person.CallAll{}, "")
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}

	if err := p.Schedule.Add(0, 99, "x"); !errors.Is(err, types.ErrInvalidFloor) {
		t.Errorf("Expected ErrInvalidFloor, got %v", err)
	}
	if p.Schedule.Len() != 0 {
		t.Errorf("Expected the schedule to stay empty, got %d events", p.Schedule.Len())
	}

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}
