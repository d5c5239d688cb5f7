package definition

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/dispatch"
	"github.com/dandesousa/elevator-simulation/person"
	"github.com/dandesousa/elevator-simulation/sim"
	"github.com/dandesousa/elevator-simulation/types"
)

const (
	START_WORK_DESCRIPTION = "starting the work day"
	END_WORK_DESCRIPTION   = "ending the work day"
	LUNCH_DESCRIPTION      = "going to lunch"
	BACK_TO_WORK           = "back to work after lunch"
)

/*
 * GenerateParams describes an office building where everybody arrives in
 * the morning, works on one floor, eats lunch on the closest lunch floor
 * and leaves after a fixed working day
 */
type GenerateParams struct {
	People           int
	Floors           int
	Banks            int
	ElevatorsPerBank int
	Capacity         int
	DispatchStrategy string
	CallStrategy     string

	WorkBegin   time.Duration
	WorkEnd     time.Duration
	WorkLength  time.Duration
	LunchBegin  time.Duration
	LunchEnd    time.Duration
	LunchLength time.Duration
	LunchFloors []int
}

func DefaultGenerateParams() GenerateParams {
	return GenerateParams{
		Floors:           9,
		Banks:            1,
		ElevatorsPerBank: 6,
		Capacity:         types.DEFAULT_CAPACITY,
		DispatchStrategy: dispatch.NEAREST,
		CallStrategy:     person.CALL_RANDOM,
		WorkBegin:        6 * time.Hour,
		WorkEnd:          10 * time.Hour,
		WorkLength:       9 * time.Hour,
		LunchBegin:       12 * time.Hour,
		LunchEnd:         13 * time.Hour,
		LunchLength:      45 * time.Minute,
	}
}

func (params GenerateParams) Validate() error {
	switch {
	case params.People < 0:
		return types.NewConfigError("people", fmt.Sprintf("negative count %d", params.People), nil)
	case params.Floors < 2:
		return types.NewConfigError("floors", fmt.Sprintf("need at least two floors, got %d", params.Floors), nil)
	case params.Banks < 1:
		return types.NewConfigError("banks", fmt.Sprintf("need at least one bank, got %d", params.Banks), nil)
	case params.ElevatorsPerBank < 1:
		return types.NewConfigError("elevators", fmt.Sprintf("need at least one elevator per bank, got %d", params.ElevatorsPerBank), nil)
	case params.Capacity < 1:
		return types.NewConfigError("capacity", fmt.Sprintf("need a positive capacity, got %d", params.Capacity), nil)
	case params.WorkEnd < params.WorkBegin:
		return types.NewConfigError("work_end", "ends before work_begin", nil)
	case params.LunchEnd < params.LunchBegin:
		return types.NewConfigError("lunch_end", "ends before lunch_begin", nil)
	case len(params.LunchFloors) == 0:
		return types.NewConfigError("lunch_floors", "need at least one lunch floor", nil)
	}

	for _, level := range params.LunchFloors {
		if level < 1 || level > params.Floors {
			return types.NewConfigError("lunch_floors", fmt.Sprintf("floor %d outside the building", level), types.ErrInvalidFloor)
		}
	}

	return nil
}

func randomTimeIn(rng *rand.Rand, begin time.Duration, end time.Duration) time.Duration {
	secs := int((end - begin) / time.Second)
	return begin + time.Duration(rng.Intn(secs+1))*time.Second
}

// Lunch floors sorted by distance from work, ties kept in the given order.
func closestLunchFloor(work building.Floor, lunchFloors []int) building.Floor {
	sorted := append([]int(nil), lunchFloors...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return work.Distance(building.Floor(sorted[i])) < work.Distance(building.Floor(sorted[j]))
	})
	return building.Floor(sorted[0])
}

/*
 * Generate builds a random office day from params. Every draw comes from
 * rng, so a seeded rng gives the same definition.
 */
func Generate(params GenerateParams, rng *rand.Rand) (*Definition, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s, err := sim.New(params.Floors)
	if err != nil {
		return nil, err
	}

	for i := 0; i < params.Banks; i++ {
		strategy, err := dispatch.ByName(params.DispatchStrategy)
		if err != nil {
			return nil, err
		}

		b, err := s.AddBank(strategy, "")
		if err != nil {
			return nil, err
		}

		for j := 0; j < params.ElevatorsPerBank; j++ {
			if _, err := b.AddElevator(s.ElevatorConfig(params.Capacity, s.Building.Ground()), ""); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i < params.People; i++ {
		strategy, err := person.CallStrategyByName(params.CallStrategy, rng)
		if err != nil {
			return nil, err
		}

		p, err := s.AddPerson(strategy, "")
		if err != nil {
			return nil, err
		}

		work := building.Floor(2 + rng.Intn(params.Floors-1))
		arrival := randomTimeIn(rng, params.WorkBegin, params.WorkEnd)
		lunch := randomTimeIn(rng, params.LunchBegin, params.LunchEnd)

		events := []person.ScheduleEvent{
			{Start: arrival, Floor: work, Description: START_WORK_DESCRIPTION},
			{Start: arrival + params.WorkLength, Floor: s.Building.Ground(), Description: END_WORK_DESCRIPTION},
			{Start: lunch, Floor: closestLunchFloor(work, params.LunchFloors), Description: LUNCH_DESCRIPTION},
			{Start: lunch + params.LunchLength, Floor: work, Description: BACK_TO_WORK},
		}

		for _, event := range events {
			if err := p.Schedule.Add(event.Start, event.Floor, event.Description); err != nil {
				return nil, types.NewConfigError(fmt.Sprintf("people[%d]", i), "schedule does not fit in a day", err)
			}
		}
	}

	return FromSimulation(s), nil
}

/*
 * ParseClock parses a time of day such as "6:00:00" or "13:30" into the
 * offset from midnight
 */
func ParseClock(clock string) (time.Duration, error) {
	layout := "15:04:05"
	if strings.Count(clock, ":") == 1 {
		layout = "15:04"
	}

	parsed, err := time.Parse(layout, clock)
	if err != nil {
		return 0, types.NewConfigError("clock", "malformed time of day "+clock, err)
	}

	midnight := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, parsed.Location())
	return parsed.Sub(midnight), nil
}
