package definition

import (
	"encoding/json"
	"io"

	"github.com/dandesousa/elevator-simulation/dispatch"
	"github.com/dandesousa/elevator-simulation/sim"

	"gopkg.in/yaml.v3"
)

/*
 * FromSimulation describes s as a definition. Built before s runs, it
 * round-trips through Build.
 */
func FromSimulation(s *sim.Simulation) *Definition {
	def := Definition{
		Building:      &BuildingDef{Floors: s.Building.NumFloors()},
		ElevatorBanks: []BankDef{},
		People:        []PersonDef{},
	}

	for _, b := range s.Banks() {
		bankDef := BankDef{
			UUID:             b.UUID,
			DispatchStrategy: dispatch.NameOf(b.Strategy()),
		}

		for _, agent := range b.Elevators() {
			model := agent.Model()
			timing := model.Timing()

			bankDef.Elevators = append(bankDef.Elevators, ElevatorDef{
				UUID:             model.UUID,
				Capacity:         model.Capacity(),
				StartingLocation: model.Location().Level(),
				OpenSecs:         durationToSecs(timing.Open),
				CloseSecs:        durationToSecs(timing.Close),
				WaitSecs:         durationToSecs(timing.Wait),
				TravelSecs:       durationToSecs(timing.Travel),
			})
		}

		def.ElevatorBanks = append(def.ElevatorBanks, bankDef)
	}

	for _, p := range s.Persons() {
		personDef := PersonDef{
			UUID:     p.UUID,
			Schedule: []EventDef{},
		}

		if strategy := s.CallStrategyOf(p); strategy != nil {
			personDef.ElevatorCallStrategy = strategy.Name()
		}

		for _, event := range p.Schedule.Events() {
			personDef.Schedule = append(personDef.Schedule, EventDef{
				Start:       event.Start.Seconds(),
				Level:       event.Floor.Level(),
				Description: event.Description,
			})
		}

		def.People = append(def.People, personDef)
	}

	return &def
}

func Write(w io.Writer, format Format, def *Definition) error {
	switch format {
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(def); err != nil {
			return err
		}
		return encoder.Close()

	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(def)
	}
}
