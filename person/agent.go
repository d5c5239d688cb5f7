package person

import (
	"errors"
	"fmt"

	"github.com/dandesousa/elevator-simulation/bank"
	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elev"
	"github.com/dandesousa/elevator-simulation/kernel"
	"github.com/dandesousa/elevator-simulation/telemetry"
	"github.com/dandesousa/elevator-simulation/types"

	"github.com/rs/zerolog"
)

type PersonState int

const (
	PS_Idle PersonState = iota
	PS_Scheduled
	PS_Hailing
	PS_Riding
	PS_Done
)

func (state PersonState) String() string {
	switch state {
	case PS_Idle:
		return "idle"
	case PS_Scheduled:
		return "scheduled"
	case PS_Hailing:
		return "hailing"
	case PS_Riding:
		return "riding"
	case PS_Done:
		return "done"
	default:
		return fmt.Sprintf("PersonState(%d)", int(state))
	}
}

/*
 * Agent walks a person through their schedule: wait for the next event,
 * call elevators, board, ride and alight, then report the trip
 */
type Agent struct {
	person   *Person
	kernel   *kernel.Kernel
	banks    []*bank.Bank
	hall     *bank.Hall
	strategy CallStrategy
	sink     telemetry.Sink
	proc     *kernel.Proc
	log      zerolog.Logger

	state      PersonState
	event      ScheduleEvent
	trip       types.Trip
	car        *elev.Agent
	hallFuture *kernel.Future[*elev.Agent]
	doorFuture *kernel.Future[building.Floor]
	trips      int
	missed     int
}

func NewAgent(
	k *kernel.Kernel,
	person *Person,
	banks []*bank.Bank,
	hall *bank.Hall,
	strategy CallStrategy,
	sink telemetry.Sink,
	log zerolog.Logger,
) *Agent {

	if strategy == nil {
		strategy = CallAll{}
	}

	if sink == nil {
		sink = telemetry.Discard
	}

	return &Agent{
		person:   person,
		kernel:   k,
		banks:    banks,
		hall:     hall,
		strategy: strategy,
		sink:     sink,
		log:      log.With().Int("person", person.ID).Logger(),
	}
}

func (a *Agent) Start() *kernel.Proc {
	if a.proc == nil {
		a.proc = a.kernel.Spawn(fmt.Sprintf("person-%d", a.person.ID), a)
	}
	return a.proc
}

func (a *Agent) Person() *Person {
	return a.person
}

func (a *Agent) Strategy() CallStrategy {
	return a.strategy
}

func (a *Agent) State() PersonState {
	return a.state
}

func (a *Agent) Proc() *kernel.Proc {
	return a.proc
}

// Trips is the number of completed trips.
func (a *Agent) Trips() int {
	return a.trips
}

// Missed is the number of schedule events skipped because they had already passed.
func (a *Agent) Missed() int {
	return a.missed
}

func (a *Agent) Resume(k *kernel.Kernel) kernel.Condition {
	for {
		switch a.state {
		case PS_Idle:
			event, missed, ok := a.person.Schedule.Next(k.Now())
			a.missed += missed
			if missed > 0 {
				a.log.Warn().
					Dur("t", k.Now()).
					Int("missed", missed).
					Msg("Skipped schedule events that already passed")
			}

			if !ok {
				a.state = PS_Done
				continue
			}

			a.event = event
			a.state = PS_Scheduled
			return kernel.Timeout(event.Start - k.Now())

		case PS_Scheduled:
			if cond := a.HandleScheduledEvent(); cond != nil {
				return cond
			}

		case PS_Hailing:
			if cond := a.HandleHallAnnouncement(); cond != nil {
				return cond
			}

		case PS_Riding:
			if cond := a.HandleDoorsOpened(); cond != nil {
				return cond
			}

		case PS_Done:
			return kernel.Done
		}
	}
}

/*
 * Calls elevators for the current schedule event and waits in the hall
 */
func (a *Agent) HandleScheduledEvent() kernel.Condition {
	origin := a.person.Location()
	destination := a.event.Floor

	if origin == destination {
		a.log.Debug().
			Dur("t", a.kernel.Now()).
			Int("floor", origin.Level()).
			Str("event", a.event.Description).
			Msg("Already at destination")
		a.state = PS_Idle
		return nil
	}

	dirn := origin.Direction(destination)

	a.trip = types.Trip{
		CalledAt:    a.kernel.Now(),
		Person:      a.person.ID,
		Origin:      origin.Level(),
		Destination: destination.Level(),
		Direction:   dirn,
		Distance:    origin.Distance(destination),
		Description: a.event.Description,
	}

	var called []int
	for _, b := range a.strategy.Choose(a.banks) {
		if _, err := b.Call(origin, dirn); err != nil {
			a.log.Error().Err(err).Int("bank", b.ID).Msg("Calling elevator")
			continue
		}
		called = append(called, b.ID)
	}

	if len(called) == 0 {
		a.log.Error().
			Dur("t", a.kernel.Now()).
			Str("event", a.event.Description).
			Msg("No bank accepted the call, trip dropped")
		a.state = PS_Idle
		return nil
	}

	a.log.Debug().
		Dur("t", a.kernel.Now()).
		Int("from", origin.Level()).
		Int("to", destination.Level()).
		Ints("banks", called).
		Msg("Called elevator")

	a.hall.Wait(origin, dirn, a.person.ID, called)
	a.hallFuture = a.hall.Next(origin, dirn)
	a.state = PS_Hailing

	return kernel.Await(a.hallFuture)
}

/*
 * Tries to board the elevator that opened its doors in the hall.
 * A full car means waiting for the next one.
 */
func (a *Agent) HandleHallAnnouncement() kernel.Condition {
	origin := a.person.Location()
	dirn := a.trip.Direction
	car := a.hallFuture.Value()

	if err := car.Enter(a.person.ID); err != nil {
		if errors.Is(err, types.ErrCapacityExceeded) {
			a.log.Debug().
				Dur("t", a.kernel.Now()).
				Int("elevator", car.ID()).
				Msg("Elevator full, waiting for the next one")
		} else {
			a.log.Warn().Err(err).Msg("Boarding")
		}

		a.hallFuture = a.hall.Next(origin, dirn)
		return kernel.Await(a.hallFuture)
	}

	a.hall.Leave(origin, dirn, a.person.ID)

	a.car = car
	a.trip.ArrivedAt = a.kernel.Now()
	a.trip.Elevator = car.ID()

	if err := car.AddStop(a.event.Floor); err != nil {
		a.log.Error().
			Err(err).
			Dur("t", a.kernel.Now()).
			Int("elevator", car.ID()).
			Str("event", a.event.Description).
			Msg("Destination refused, trip dropped")

		if err := car.Exit(a.person.ID); err != nil {
			a.log.Error().Err(err).Msg("Leaving elevator")
		}

		a.car = nil
		a.state = PS_Idle
		return nil
	}

	a.state = PS_Riding
	a.doorFuture = car.DoorsOpened.Next()

	return kernel.Await(a.doorFuture)
}

/*
 * Rides until the doors open at the destination, then alights and
 * reports the trip
 */
func (a *Agent) HandleDoorsOpened() kernel.Condition {
	if a.doorFuture.Value() != a.event.Floor {
		a.doorFuture = a.car.DoorsOpened.Next()
		return kernel.Await(a.doorFuture)
	}

	if err := a.car.Exit(a.person.ID); err != nil {
		a.log.Error().
			Err(err).
			Dur("t", a.kernel.Now()).
			Int("elevator", a.car.ID()).
			Msg("Alighting failed, trip dropped")

		a.car = nil
		a.state = PS_Idle
		return nil
	}

	a.person.SetLocation(a.event.Floor)
	a.trip.Travel = a.kernel.Now() - a.trip.ArrivedAt
	a.trips++
	a.car = nil
	a.state = PS_Idle

	if err := a.sink.Record(a.trip); err != nil {
		a.log.Error().Err(err).Msg("Recording trip")
	}

	return nil
}
