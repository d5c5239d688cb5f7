package person

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/dandesousa/elevator-simulation/bank"
	"github.com/dandesousa/elevator-simulation/types"
)

func TestCallStrategies(t *testing.T) {
	banks := []*bank.Bank{{ID: 0}, {ID: 1}, {ID: 2}}

	if chosen := (CallAll{}).Choose(banks); len(chosen) != 3 {
		t.Errorf("Expected all 3 banks, got %d", len(chosen))
	}

	random := NewCallRandom(rand.New(rand.NewSource(1)))
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		chosen := random.Choose(banks)
		if len(chosen) != 1 {
			t.Fatalf("Expected exactly one bank, got %d", len(chosen))
		}
		seen[chosen[0].ID] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected every bank to be picked at some point, got %v", seen)
	}
}

func TestCallStrategyByName(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for name, expected := range map[string]string{
		"":          CALL_ALL,
		CALL_ALL:    CALL_ALL,
		CALL_RANDOM: CALL_RANDOM,
	} {
		strategy, err := CallStrategyByName(name, rng)
		if err != nil {
			t.Errorf("Expected strategy for %q, got %v", name, err)
			continue
		}
		if strategy.Name() != expected {
			t.Errorf("Expected %s for %q, got %s", expected, name, strategy.Name())
		}
	}

	if _, err := CallStrategyByName("call_strategy_shout", rng); !errors.Is(err, types.ErrConfiguration) {
		t.Errorf("Expected configuration error, got %v", err)
	}
}
