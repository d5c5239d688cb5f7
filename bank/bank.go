package bank

import (
	"errors"
	"fmt"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/dispatch"
	"github.com/dandesousa/elevator-simulation/elev"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/ident"
	"github.com/dandesousa/elevator-simulation/kernel"
	"github.com/dandesousa/elevator-simulation/orders"
	"github.com/dandesousa/elevator-simulation/types"

	"github.com/rs/zerolog"
)

var ErrNoElevators = errors.New("bank has no elevators")

type Bank struct {
	ID       int
	UUID     string
	floors   []building.Floor
	agents   []*elev.Agent
	strategy dispatch.Strategy
	hall     *Hall
	kernel   *kernel.Kernel
	ids      *ident.Issuer
	calls    int
	log      zerolog.Logger
}

func New(
	k *kernel.Kernel,
	hall *Hall,
	ids *ident.Issuer,
	id ident.ID,
	floors []building.Floor,
	strategy dispatch.Strategy,
	log zerolog.Logger,
) *Bank {

	if strategy == nil {
		strategy = dispatch.Nearest{}
	}

	return &Bank{
		ID:       id.Seq,
		UUID:     id.UUID.String(),
		floors:   append([]building.Floor(nil), floors...),
		strategy: strategy,
		hall:     hall,
		kernel:   k,
		ids:      ids,
		log:      log.With().Int("bank", id.Seq).Logger(),
	}
}

/*
 * AddElevator creates an elevator serving the bank's floors and starts
 * its process. uuid may be empty.
 */
func (b *Bank) AddElevator(config elevator.Config, uuid string) (*elev.Agent, error) {
	if b.kernel.Started() {
		return nil, fmt.Errorf("adding elevator to bank %d: %w", b.ID, types.ErrStarted)
	}

	id, err := b.ids.Adopt(ident.ELEVATOR, uuid)
	if err != nil {
		return nil, err
	}

	agent, err := elev.InitAgent(b.kernel, id.Seq, b.floors, config, b.log)
	if err != nil {
		return nil, err
	}
	agent.Model().UUID = id.UUID.String()

	agent.DoorsOpened.Subscribe(func(floor building.Floor) {
		b.HandleDoorsOpened(agent, floor)
	})
	agent.Departed.Subscribe(func(floor building.Floor) {
		b.HandleDeparted(agent, floor)
	})

	b.agents = append(b.agents, agent)
	agent.Start()

	return agent, nil
}

func (b *Bank) Elevators() []*elev.Agent {
	return b.agents
}

func (b *Bank) Models() []*elevator.Elevator {
	models := make([]*elevator.Elevator, len(b.agents))
	for i, agent := range b.agents {
		models[i] = agent.Model()
	}
	return models
}

func (b *Bank) Floors() []building.Floor {
	return b.floors
}

func (b *Bank) Strategy() dispatch.Strategy {
	return b.strategy
}

func (b *Bank) Calls() int {
	return b.calls
}

func (b *Bank) serves(floor building.Floor) bool {
	for _, f := range b.floors {
		if f == floor {
			return true
		}
	}
	return false
}

/*
 * Call asks the bank to send an elevator to floor for a passenger
 * travelling in dirn and returns the elevator the strategy chose
 */
func (b *Bank) Call(floor building.Floor, dirn types.Direction) (*elev.Agent, error) {
	if !b.serves(floor) {
		return nil, fmt.Errorf("bank %d call at %s: %w", b.ID, floor, types.ErrInvalidFloor)
	}

	if dirn != types.Up && dirn != types.Down {
		return nil, fmt.Errorf("bank %d call at %s: %w: %s", b.ID, floor, types.ErrInvalidDirection, dirn)
	}

	if len(b.agents) == 0 {
		return nil, fmt.Errorf("bank %d: %w", b.ID, ErrNoElevators)
	}

	chosen := b.strategy.Dispatch(b.Models(), b.floors, floor, dirn)

	var agent *elev.Agent
	for _, a := range b.agents {
		if a.Model() == chosen {
			agent = a
			break
		}
	}

	if agent == nil {
		return nil, fmt.Errorf("bank %d: strategy chose an elevator outside the bank", b.ID)
	}

	if err := agent.AddStop(floor); err != nil {
		return nil, err
	}
	b.calls++

	b.log.Debug().
		Dur("t", b.kernel.Now()).
		Int("floor", floor.Level()).
		Stringer("dirn", dirn).
		Int("elevator", agent.ID()).
		Msg("Call dispatched")

	return agent, nil
}

func (b *Bank) stopPlanned(floor building.Floor) bool {
	for _, agent := range b.agents {
		if agent.Model().HasStop(floor) {
			return true
		}
	}
	return false
}

/*
 * Lets the people waiting to travel in the elevator's next direction know
 * the doors are open. A car about to park serves the longest waiting side.
 */
func (b *Bank) HandleDoorsOpened(agent *elev.Agent, floor building.Floor) {
	dirn := orders.IntendedDirection(agent.Model().State())

	if dirn == types.Idle {
		dirn = b.hall.OldestDirection(floor)
	}

	if dirn == types.Idle {
		return
	}

	b.hall.Announce(floor, dirn, agent)
}

/*
 * Calls left unanswered when an elevator moves on from a floor are
 * dispatched again, unless an elevator of the bank is already headed there
 */
func (b *Bank) HandleDeparted(agent *elev.Agent, floor building.Floor) {
	for _, dirn := range []types.Direction{types.Up, types.Down} {
		if !b.hall.PendingFor(floor, dirn, b.ID) || b.stopPlanned(floor) {
			continue
		}

		b.log.Debug().
			Dur("t", b.kernel.Now()).
			Int("floor", floor.Level()).
			Stringer("dirn", dirn).
			Int("waiting", b.hall.Waiting(floor, dirn)).
			Msg("Re-dispatching call")

		if _, err := b.Call(floor, dirn); err != nil {
			b.log.Error().Err(err).Msg("Re-dispatching call")
		}
	}
}
