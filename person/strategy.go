package person

import (
	"math/rand"

	"github.com/dandesousa/elevator-simulation/bank"
	"github.com/dandesousa/elevator-simulation/types"
)

const (
	CALL_ALL    = "call_strategy_all"
	CALL_RANDOM = "call_strategy_random"
)

// CallStrategy picks the banks a person calls for one trip.
type CallStrategy interface {
	Name() string
	Choose(banks []*bank.Bank) []*bank.Bank
}

type CallAll struct{}

func (CallAll) Name() string {
	return CALL_ALL
}

func (CallAll) Choose(banks []*bank.Bank) []*bank.Bank {
	return banks
}

type CallRandom struct {
	rng *rand.Rand
}

func NewCallRandom(rng *rand.Rand) CallRandom {
	return CallRandom{rng: rng}
}

func (CallRandom) Name() string {
	return CALL_RANDOM
}

func (strategy CallRandom) Choose(banks []*bank.Bank) []*bank.Bank {
	if len(banks) == 0 {
		return nil
	}
	return []*bank.Bank{banks[strategy.rng.Intn(len(banks))]}
}

// CallStrategyByName returns the strategy for name, calling every bank for "".
func CallStrategyByName(name string, rng *rand.Rand) (CallStrategy, error) {
	switch name {
	case "", CALL_ALL:
		return CallAll{}, nil
	case CALL_RANDOM:
		return NewCallRandom(rng), nil
	default:
		return nil, types.NewConfigError("elevator_call_strategy", "unknown strategy "+name, nil)
	}
}
