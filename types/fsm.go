package types

import "time"

/*
 * Side effects requested by a state machine transition,
 * carried out by the elevator agent
 */
type FsmOutput struct {
	Behaviour  ElevBehaviour
	ElevDirn   ElevDirnChange
	Move       bool
	OpenDoor   bool
	CloseDoor  bool
	ClearStop  bool
	StartTimer bool
	Timer      time.Duration
}

type ElevDirnChange struct {
	Set  bool
	Dirn Direction
}
