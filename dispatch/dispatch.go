/*
 * Package dispatch decides which elevator of a bank answers a hall call.
 */
package dispatch

import (
	"sort"

	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/elevator"
	"github.com/dandesousa/elevator-simulation/types"
)

type Strategy interface {
	Dispatch(
		elevators []*elevator.Elevator,
		floors []building.Floor,
		floor building.Floor,
		dirn types.Direction,
	) *elevator.Elevator
}

type StrategyFunc func(
	elevators []*elevator.Elevator,
	floors []building.Floor,
	floor building.Floor,
	dirn types.Direction,
) *elevator.Elevator

func (fn StrategyFunc) Dispatch(
	elevators []*elevator.Elevator,
	floors []building.Floor,
	floor building.Floor,
	dirn types.Direction,
) *elevator.Elevator {
	return fn(elevators, floors, floor, dirn)
}

const (
	NEAREST       = "nearest"
	SHORTEST_TIME = "shortest_time"
)

var strategies = map[string]func() Strategy{
	NEAREST:       func() Strategy { return Nearest{} },
	SHORTEST_TIME: func() Strategy { return ShortestTime{} },
}

// ByName returns the strategy registered under name, the nearest-elevator strategy for "".
func ByName(name string) (Strategy, error) {
	if name == "" {
		name = NEAREST
	}

	newStrategy, ok := strategies[name]
	if !ok {
		return nil, types.NewConfigError("dispatch_strategy", "unknown strategy "+name, nil)
	}

	return newStrategy(), nil
}

func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NameOf returns the registered name of strategy, "" for custom strategies.
func NameOf(strategy Strategy) string {
	switch strategy.(type) {
	case Nearest, *Nearest:
		return NEAREST
	case ShortestTime, *ShortestTime:
		return SHORTEST_TIME
	default:
		return ""
	}
}
