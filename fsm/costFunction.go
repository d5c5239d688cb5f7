package fsm

import (
	"fmt"
	"time"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/orders"
	"github.com/dandesousa/elevator-simulation/types"

	"github.com/tiendc/go-deepcopy"
)

/*
 * Estimates how long until the elevator opens its doors at floor if the
 * floor were added to its stops, by running the state machine on a copy
 */
func TimeToServe(
	state elevator.State,
	timing types.Timing,
	floor building.Floor,
) (time.Duration, error) {

	simState := new(elevator.State)
	if err := deepcopy.Copy(simState, &state); err != nil {
		return 0, fmt.Errorf("copying elevator state: %w", err)
	}

	if simState.Stops == nil {
		simState.Stops = make(map[building.Floor]bool)
	}
	simState.Stops[floor] = true

	duration := time.Duration(0)

	switch simState.Behaviour {
	case types.EB_Moving:
		duration += timing.Travel / 2
		simState.Location = simState.NextLocation()

	case types.EB_DoorOpening:
		duration -= timing.Open / 2

	case types.EB_Loading:
		duration += timing.Wait/2 + timing.Close

	case types.EB_DoorClosing:
		duration += timing.Close / 2
	}

	maxSteps := 4 * int(simState.TopFloor) * (len(simState.Stops) + 1)

	for step := 0; step < maxSteps; step++ {
		if orders.ShouldStop(*simState) {
			duration += timing.Open

			if simState.Location == floor {
				return duration, nil
			}

			delete(simState.Stops, simState.Location)
			duration += timing.Wait + timing.Close
		}

		simState.Direction = orders.ChooseDirection(*simState)
		simState.Location = simState.NextLocation()
		duration += timing.Travel
	}

	return 0, fmt.Errorf("%s not reached after %d steps", floor, maxSteps)
}
