package elev

import (
	"fmt"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/kernel"

	"github.com/rs/zerolog"
)

func InitAgent(
	k *kernel.Kernel,
	id int,
	floors []building.Floor,
	config elevator.Config,
	log zerolog.Logger,
) (*Agent, error) {

	model, err := elevator.InitElevator(id, floors, config)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("elevator-%d", id)

	agent := Agent{
		Arrived:     kernel.NewEvent[building.Floor](name + ".arrived"),
		DoorsOpened: kernel.NewEvent[building.Floor](name + ".doors_opened"),
		Departed:    kernel.NewEvent[building.Floor](name + ".departed"),
		model:       model,
		kernel:      k,
		stopAdded:   kernel.NewEvent[building.Floor](name + ".stop_added"),
		log:         log.With().Int("elevator", id).Logger(),
	}

	return &agent, nil
}

// Start spawns the agent's process on its kernel.
func (a *Agent) Start() *kernel.Proc {
	if a.proc == nil {
		a.proc = a.kernel.Spawn(fmt.Sprintf("elevator-%d", a.model.ID), a)
	}
	return a.proc
}
