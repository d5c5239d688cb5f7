package fsm

import (
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/orders"
	"github.com/dandesousa/elevator-simulation/types"
)

func setDirn(dirn types.Direction) types.ElevDirnChange {
	return types.ElevDirnChange{Set: true, Dirn: dirn}
}

func OnStopAdded(s elevator.State) types.FsmOutput {
	if s.Behaviour == types.EB_Idle && s.HasStops() {
		return types.FsmOutput{Behaviour: types.EB_Deciding}
	}

	return types.FsmOutput{Behaviour: s.Behaviour}
}

/*
 * Picks the next step of an elevator standing at a floor with its doors closed
 */
func OnDecide(s elevator.State, timing types.Timing) types.FsmOutput {
	if !s.HasStops() {
		return types.FsmOutput{
			Behaviour: types.EB_Idle,
			ElevDirn:  setDirn(types.Idle),
		}
	}

	if orders.ShouldStop(s) {
		return types.FsmOutput{
			Behaviour:  types.EB_DoorOpening,
			StartTimer: true,
			Timer:      timing.Open,
		}
	}

	return types.FsmOutput{
		Behaviour:  types.EB_Moving,
		ElevDirn:   setDirn(orders.ChooseDirection(s)),
		StartTimer: true,
		Timer:      timing.Travel,
	}
}

func OnTravelDone(s elevator.State) types.FsmOutput {
	return types.FsmOutput{
		Behaviour: types.EB_Deciding,
		Move:      true,
	}
}

func OnDoorOpened(s elevator.State, timing types.Timing) types.FsmOutput {
	return types.FsmOutput{
		Behaviour:  types.EB_Loading,
		OpenDoor:   true,
		ClearStop:  true,
		StartTimer: true,
		Timer:      timing.Wait,
	}
}

func OnLoadingDone(s elevator.State, timing types.Timing) types.FsmOutput {
	return types.FsmOutput{
		Behaviour:  types.EB_DoorClosing,
		CloseDoor:  true,
		StartTimer: true,
		Timer:      timing.Close,
	}
}

func OnDoorClosed(s elevator.State) types.FsmOutput {
	return types.FsmOutput{Behaviour: types.EB_Deciding}
}

/*
 * Transition taken when the timer of the current behaviour runs out
 */
func OnTimeout(s elevator.State, timing types.Timing) types.FsmOutput {
	switch s.Behaviour {
	case types.EB_Moving:
		return OnTravelDone(s)

	case types.EB_DoorOpening:
		return OnDoorOpened(s, timing)

	case types.EB_Loading:
		return OnLoadingDone(s, timing)

	case types.EB_DoorClosing:
		return OnDoorClosed(s)

	default:
		return types.FsmOutput{Behaviour: s.Behaviour}
	}
}
