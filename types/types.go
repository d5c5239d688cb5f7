package types

import (
	"fmt"
	"math"
	"time"
)

// MAX_SECS is the largest whole number of seconds a time.Duration holds.
const MAX_SECS = float64(math.MaxInt64 / int64(time.Second))

type Direction int

const (
	Down Direction = -1
	Idle Direction = 0
	Up   Direction = 1
)

func (dirn Direction) Valid() bool {
	return dirn == Up || dirn == Down || dirn == Idle
}

func (dirn Direction) Opposite() Direction {
	return -dirn
}

func (dirn Direction) String() string {
	switch dirn {
	case Up:
		return "up"
	case Down:
		return "down"
	case Idle:
		return "idle"
	default:
		return fmt.Sprintf("Direction(%d)", int(dirn))
	}
}

type DoorState int

const (
	DS_Closed DoorState = iota
	DS_Open
)

func (door DoorState) String() string {
	if door == DS_Open {
		return "open"
	}
	return "closed"
}

/*
 * States of the elevator movement state machine
 */
type ElevBehaviour int

const (
	EB_Idle ElevBehaviour = iota
	EB_Deciding
	EB_Moving
	EB_DoorOpening
	EB_Loading
	EB_DoorClosing
)

func (behaviour ElevBehaviour) String() string {
	switch behaviour {
	case EB_Idle:
		return "idle"
	case EB_Deciding:
		return "deciding"
	case EB_Moving:
		return "moving"
	case EB_DoorOpening:
		return "door_opening"
	case EB_Loading:
		return "loading"
	case EB_DoorClosing:
		return "door_closing"
	default:
		return fmt.Sprintf("ElevBehaviour(%d)", int(behaviour))
	}
}

/*
 * Door and travel delays of a single elevator
 */
type Timing struct {
	Open   time.Duration
	Close  time.Duration
	Wait   time.Duration
	Travel time.Duration
}

const (
	DEFAULT_OPEN_SECS   = 5
	DEFAULT_CLOSE_SECS  = 5
	DEFAULT_WAIT_SECS   = 5
	DEFAULT_TRAVEL_SECS = 7
	DEFAULT_CAPACITY    = 10
)

func DefaultTiming() Timing {
	return Timing{
		Open:   DEFAULT_OPEN_SECS * time.Second,
		Close:  DEFAULT_CLOSE_SECS * time.Second,
		Wait:   DEFAULT_WAIT_SECS * time.Second,
		Travel: DEFAULT_TRAVEL_SECS * time.Second,
	}
}

// DoorCycle is the time from the start of opening until the doors are closed.
func (timing Timing) DoorCycle() time.Duration {
	return timing.Open + timing.Wait + timing.Close
}
