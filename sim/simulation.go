/*
 * Package sim assembles a building, its elevator banks and its people
 * on one kernel and runs them.
 */
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dandesousa/elevator-simulation/bank"
	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/dispatch"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/ident"
	"github.com/dandesousa/elevator-simulation/kernel"
	"github.com/dandesousa/elevator-simulation/person"
	"github.com/dandesousa/elevator-simulation/telemetry"
	"github.com/dandesousa/elevator-simulation/types"

	"github.com/rs/zerolog"
)

type pendingPerson struct {
	person   *person.Person
	strategy person.CallStrategy
}

type Simulation struct {
	RunID    string
	Kernel   *kernel.Kernel
	Building *building.Building
	Hall     *bank.Hall

	banks   []*bank.Bank
	pending []pendingPerson
	people  []*person.Agent
	ids     *ident.Issuer
	sink    telemetry.Sink
	rng     *rand.Rand
	timing  types.Timing
	pacer   kernel.Pacer
	started bool
	log     zerolog.Logger
}

type Option func(*Simulation)

func WithSink(sink telemetry.Sink) Option {
	return func(s *Simulation) { s.sink = sink }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Simulation) { s.log = log }
}

func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = rand.New(rand.NewSource(seed)) }
}

func WithTiming(timing types.Timing) Option {
	return func(s *Simulation) { s.timing = timing }
}

func WithRunID(runID string) Option {
	return func(s *Simulation) { s.RunID = runID }
}

func WithPacer(pacer kernel.Pacer) Option {
	return func(s *Simulation) { s.pacer = pacer }
}

func New(numFloors int, opts ...Option) (*Simulation, error) {
	if numFloors < 1 {
		return nil, types.NewConfigError("building.floors", fmt.Sprintf("need at least one floor, got %d", numFloors), nil)
	}

	s := &Simulation{
		RunID:    ident.NewRunID(),
		Building: building.New(numFloors),
		Hall:     bank.NewHall(),
		ids:      ident.NewIssuer(),
		sink:     telemetry.Discard,
		rng:      rand.New(rand.NewSource(1)),
		timing:   types.DefaultTiming(),
		log:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With().Str("run", s.RunID).Logger()
	s.Kernel = kernel.New(s.log)
	if s.pacer != nil {
		s.Kernel.SetPacer(s.pacer)
	}

	return s, nil
}

func (s *Simulation) Rand() *rand.Rand {
	return s.rng
}

func (s *Simulation) Timing() types.Timing {
	return s.timing
}

func (s *Simulation) Issuer() *ident.Issuer {
	return s.ids
}

func (s *Simulation) Banks() []*bank.Bank {
	return s.banks
}

// People returns the person agents, available once the simulation has started.
func (s *Simulation) People() []*person.Agent {
	return s.people
}

func (s *Simulation) Persons() []*person.Person {
	persons := make([]*person.Person, len(s.pending))
	for i, p := range s.pending {
		persons[i] = p.person
	}
	return persons
}

func (s *Simulation) CallStrategyOf(p *person.Person) person.CallStrategy {
	for _, pending := range s.pending {
		if pending.person == p {
			return pending.strategy
		}
	}
	return nil
}

func (s *Simulation) Now() time.Duration {
	return s.Kernel.Now()
}

// AddBank adds a bank serving every floor of the building. uuid may be empty.
func (s *Simulation) AddBank(strategy dispatch.Strategy, uuid string) (*bank.Bank, error) {
	if s.started {
		return nil, fmt.Errorf("adding bank: %w", types.ErrStarted)
	}

	id, err := s.ids.Adopt(ident.BANK, uuid)
	if err != nil {
		return nil, err
	}

	b := bank.New(s.Kernel, s.Hall, s.ids, id, s.Building.Floors(), strategy, s.log)
	s.banks = append(s.banks, b)

	return b, nil
}

// ElevatorConfig is the config of an elevator using the simulation's timing.
func (s *Simulation) ElevatorConfig(capacity int, start building.Floor) elevator.Config {
	return elevator.Config{
		Capacity: capacity,
		Start:    start,
		Timing:   s.timing,
	}
}

// AddPerson adds a person on the ground floor. uuid may be empty.
// Their schedule only takes floors of the building.
func (s *Simulation) AddPerson(strategy person.CallStrategy, uuid string) (*person.Person, error) {
	if s.started {
		return nil, fmt.Errorf("adding person: %w", types.ErrStarted)
	}

	id, err := s.ids.Adopt(ident.PERSON, uuid)
	if err != nil {
		return nil, err
	}

	p := person.NewInBuilding(id, s.Building.Ground(), s.Building)
	s.pending = append(s.pending, pendingPerson{person: p, strategy: strategy})

	return p, nil
}

func (s *Simulation) start() {
	if s.started {
		return
	}
	s.started = true

	elevators := 0
	for _, b := range s.banks {
		elevators += len(b.Elevators())
	}

	for _, pending := range s.pending {
		agent := person.NewAgent(
			s.Kernel,
			pending.person,
			s.banks,
			s.Hall,
			pending.strategy,
			s.sink,
			s.log,
		)
		agent.Start()
		s.people = append(s.people, agent)
	}

	s.log.Info().
		Int("floors", s.Building.NumFloors()).
		Int("banks", len(s.banks)).
		Int("elevators", elevators).
		Int("people", len(s.people)).
		Msg("Simulation started")
}

func (s *Simulation) finish(err error) error {
	trips := 0
	for _, agent := range s.people {
		trips += agent.Trips()
	}

	s.log.Info().
		Dur("t", s.Kernel.Now()).
		Int("trips", trips).
		AnErr("err", err).
		Msg("Simulation finished")

	return err
}

// Run runs until every person has worked through their schedule.
func (s *Simulation) Run(ctx context.Context) error {
	s.start()
	return s.finish(s.Kernel.Run(ctx))
}

func (s *Simulation) RunUntil(ctx context.Context, until time.Duration) error {
	s.start()
	return s.finish(s.Kernel.RunUntil(ctx, until))
}
