package definition

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/dispatch"
	"github.com/dandesousa/elevator-simulation/person"
	"github.com/dandesousa/elevator-simulation/sim"
	"github.com/dandesousa/elevator-simulation/types"

	"gopkg.in/yaml.v3"
)

func Decode(r io.Reader, format Format) (*Definition, error) {
	var def Definition
	var err error

	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(&def)
	default:
		err = json.NewDecoder(r).Decode(&def)
	}

	if err != nil {
		return nil, types.NewConfigError("", "malformed "+format.String()+" definition", err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

func Read(path string) (*Definition, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, types.NewConfigError("", "opening definition", err)
	}
	defer file.Close()

	return Decode(file, FormatOf(path))
}

/*
 * Build creates the simulation described by def
 */
func Build(def *Definition, opts ...sim.Option) (*sim.Simulation, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	s, err := sim.New(def.Building.Floors, opts...)
	if err != nil {
		return nil, err
	}

	for i, bankDef := range def.ElevatorBanks {
		field := fmt.Sprintf("elevator_banks[%d]", i)

		strategy, err := dispatch.ByName(bankDef.DispatchStrategy)
		if err != nil {
			return nil, configErrorAt(field+".dispatch_strategy", err)
		}

		b, err := s.AddBank(strategy, bankDef.UUID)
		if err != nil {
			return nil, configErrorAt(field+".uuid", err)
		}

		for j, e := range bankDef.Elevators {
			elevatorField := fmt.Sprintf("%s.elevators[%d]", field, j)

			capacity := e.Capacity
			if capacity == 0 {
				capacity = types.DEFAULT_CAPACITY
			}

			config := s.ElevatorConfig(capacity, building.Floor(e.StartingLocation))
			if e.OpenSecs != nil {
				config.Timing.Open = secsToDuration(*e.OpenSecs)
			}
			if e.CloseSecs != nil {
				config.Timing.Close = secsToDuration(*e.CloseSecs)
			}
			if e.WaitSecs != nil {
				config.Timing.Wait = secsToDuration(*e.WaitSecs)
			}
			if e.TravelSecs != nil {
				config.Timing.Travel = secsToDuration(*e.TravelSecs)
			}

			if _, err := b.AddElevator(config, e.UUID); err != nil {
				return nil, configErrorAt(elevatorField, err)
			}
		}
	}

	for i, personDef := range def.People {
		field := fmt.Sprintf("people[%d]", i)

		strategy, err := person.CallStrategyByName(personDef.ElevatorCallStrategy, s.Rand())
		if err != nil {
			return nil, configErrorAt(field+".elevator_call_strategy", err)
		}

		p, err := s.AddPerson(strategy, personDef.UUID)
		if err != nil {
			return nil, configErrorAt(field+".uuid", err)
		}

		for j, event := range personDef.Schedule {
			eventField := fmt.Sprintf("%s.schedule[%d]", field, j)

			floor, err := s.Building.Floor(event.Level)
			if err != nil {
				return nil, configErrorAt(eventField+".level", err)
			}

			if math.IsNaN(event.Start) || math.Abs(event.Start) > types.MAX_SECS {
				return nil, types.NewConfigError(eventField+".start", fmt.Sprintf("start %v out of range", event.Start), types.ErrInvalidTime)
			}

			if err := p.Schedule.Add(secsToDuration(event.Start), floor, event.Description); err != nil {
				return nil, configErrorAt(eventField+".start", err)
			}
		}
	}

	return s, nil
}

// Load reads the definition at path and builds its simulation.
func Load(path string, opts ...sim.Option) (*sim.Simulation, error) {
	def, err := Read(path)
	if err != nil {
		return nil, err
	}
	return Build(def, opts...)
}
