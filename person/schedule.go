package person

import (
	"fmt"
	"sort"
	"time"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/types"
)

const DAY = 24 * time.Hour

const UNKNOWN_DESCRIPTION = "unknown"

type ScheduleEvent struct {
	Start       time.Duration
	Floor       building.Floor
	Description string
}

/*
 * Schedule keeps events sorted by start time. Events with equal start
 * times keep the order they were added in.
 * A schedule made by NewSchedule only takes floors up to its top floor.
 */
type Schedule struct {
	events []ScheduleEvent
	cursor int
	top    building.Floor
}

func NewSchedule(top building.Floor) *Schedule {
	return &Schedule{top: top}
}

func (s *Schedule) Add(start time.Duration, floor building.Floor, description string) error {
	if start < 0 || start > DAY {
		return fmt.Errorf("schedule event at %s: %w", start, types.ErrInvalidTime)
	}

	if floor < 1 || (s.top > 0 && floor > s.top) {
		return fmt.Errorf("schedule event to %s: %w", floor, types.ErrInvalidFloor)
	}

	if description == "" {
		description = UNKNOWN_DESCRIPTION
	}

	i := sort.Search(len(s.events), func(i int) bool {
		return s.events[i].Start > start
	})

	s.events = append(s.events, ScheduleEvent{})
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = ScheduleEvent{Start: start, Floor: floor, Description: description}

	if i < s.cursor {
		s.cursor++
	}

	return nil
}

func (s *Schedule) Events() []ScheduleEvent {
	return s.events
}

func (s *Schedule) Len() int {
	return len(s.events)
}

/*
 * Next hands out the next event whose start time has not passed at now.
 * Events that were missed are skipped and counted.
 */
func (s *Schedule) Next(now time.Duration) (ScheduleEvent, int, bool) {
	missed := 0

	for s.cursor < len(s.events) {
		event := s.events[s.cursor]
		s.cursor++

		if event.Start >= now {
			return event, missed, true
		}
		missed++
	}

	return ScheduleEvent{}, missed, false
}
