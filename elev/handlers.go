package elev

import (
	"github.com/dandesousa/elevator-simulation/fsm"
	"github.com/dandesousa/elevator-simulation/kernel"
	"github.com/dandesousa/elevator-simulation/types"
)

/*
 * Resume runs the state machine until it has to wait for a timer or,
 * when parked, for a new stop
 */
func (a *Agent) Resume(k *kernel.Kernel) kernel.Condition {
	timedOut := a.model.Behaviour() != types.EB_Idle

	for {
		if timedOut {
			timedOut = false
			if cond := a.HandleTimeout(); cond != nil {
				return cond
			}
			continue
		}

		switch a.model.Behaviour() {
		case types.EB_Idle:
			if !a.model.State().HasStops() {
				return kernel.Await(a.stopAdded.Next())
			}
			a.HandleStopAdded()

		case types.EB_Deciding:
			if cond := a.HandleDecide(); cond != nil {
				return cond
			}

		default:
			panic("elev: resumed outside of a timed state: " + a.model.Behaviour().String())
		}
	}
}

func (a *Agent) HandleStopAdded() {
	a.SetState(fsm.OnStopAdded(a.model.State()))
}

func (a *Agent) HandleTimeout() kernel.Condition {
	return a.SetState(fsm.OnTimeout(a.model.State(), a.model.Timing()))
}

func (a *Agent) HandleDecide() kernel.Condition {
	output := fsm.OnDecide(a.model.State(), a.model.Timing())
	cond := a.SetState(output)

	if output.Behaviour == types.EB_Moving || output.Behaviour == types.EB_Idle {
		a.HandleDeparture()
	}

	return cond
}

/*
 * Announces that the elevator moves on from the floor it last served
 */
func (a *Agent) HandleDeparture() {
	if a.departFrom == 0 {
		return
	}

	floor := a.departFrom
	a.departFrom = 0

	a.log.Debug().
		Dur("t", a.kernel.Now()).
		Int("floor", floor.Level()).
		Stringer("dirn", a.model.Direction()).
		Msg("Departed")

	a.Departed.Fire(floor)
}
