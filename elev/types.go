package elev

import (
	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/kernel"

	"github.com/rs/zerolog"
)

/*
 * Agent drives one elevator through the movement state machine.
 *
 * Arrived fires when the car reaches a floor, DoorsOpened once the doors
 * are open at a stop and Departed when the car moves on from a floor
 * it served (starts travelling or parks).
 */
type Agent struct {
	Arrived     *kernel.Event[building.Floor]
	DoorsOpened *kernel.Event[building.Floor]
	Departed    *kernel.Event[building.Floor]

	model      *elevator.Elevator
	kernel     *kernel.Kernel
	proc       *kernel.Proc
	stopAdded  *kernel.Event[building.Floor]
	departFrom building.Floor
	log        zerolog.Logger
}
