package elev

import (
	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/kernel"
	"github.com/dandesousa/elevator-simulation/types"
)

func (a *Agent) ID() int {
	return a.model.ID
}

func (a *Agent) Model() *elevator.Elevator {
	return a.model
}

func (a *Agent) Proc() *kernel.Proc {
	return a.proc
}

// AddStop adds floor to the stops and wakes the elevator if it is parked.
func (a *Agent) AddStop(floor building.Floor) error {
	if err := a.model.AddStop(floor); err != nil {
		return err
	}

	a.log.Debug().
		Dur("t", a.kernel.Now()).
		Int("floor", floor.Level()).
		Msg("Stop added")

	a.stopAdded.Fire(floor)
	return nil
}

func (a *Agent) Enter(person int) error {
	if err := a.model.Enter(person); err != nil {
		return err
	}

	a.log.Debug().
		Dur("t", a.kernel.Now()).
		Int("person", person).
		Int("floor", a.model.Location().Level()).
		Int("load", a.model.Load()).
		Msg("Person entered")

	return nil
}

func (a *Agent) Exit(person int) error {
	if err := a.model.Exit(person); err != nil {
		return err
	}

	a.log.Debug().
		Dur("t", a.kernel.Now()).
		Int("person", person).
		Int("floor", a.model.Location().Level()).
		Int("load", a.model.Load()).
		Msg("Person exited")

	return nil
}

/*
 * Takes in output from fsm, performs side effects and returns the
 * condition to suspend on, nil if the agent should keep going
 */
func (a *Agent) SetState(stateChanges types.FsmOutput) kernel.Condition {
	if stateChanges.ElevDirn.Set {
		if err := a.model.SetDirection(stateChanges.ElevDirn.Dirn); err != nil {
			panic(err)
		}
	}

	a.model.SetBehaviour(stateChanges.Behaviour)

	if stateChanges.Move {
		next := a.model.NextLocation()
		if err := a.model.SetLocation(next); err != nil {
			panic(err)
		}

		a.log.Debug().
			Dur("t", a.kernel.Now()).
			Int("floor", next.Level()).
			Stringer("dirn", a.model.Direction()).
			Msg("Arrived")

		a.Arrived.Fire(next)
	}

	if stateChanges.CloseDoor {
		a.model.CloseDoors()
	}

	if stateChanges.OpenDoor {
		a.model.OpenDoors()
	}

	/*
	 * Clear served stop
	 */
	if stateChanges.ClearStop {
		floor := a.model.Location()

		if err := a.model.RemoveStop(floor); err != nil {
			a.log.Warn().Err(err).Msg("Clearing stop")
		}
		a.departFrom = floor

		a.log.Debug().
			Dur("t", a.kernel.Now()).
			Int("floor", floor.Level()).
			Ints("passengers", a.model.Passengers()).
			Msg("Doors opened")

		a.DoorsOpened.Fire(floor)
	}

	if stateChanges.StartTimer {
		return kernel.Timeout(stateChanges.Timer)
	}

	return nil
}
