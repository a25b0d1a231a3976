// Package random provides the uniform random source threaded through the
// selectors
package random

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

//go:generate mockgen -destination=mock/mock.go -package=randommock github.com/KirkDiggler/island-randomizer/internal/pkg/random Source

// Source draws uniform integers
type Source interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

// Dice draws by rolling a single n-sided die with rpg-toolkit
type Dice struct{}

// NewDice returns the process-wide dice source
func NewDice() *Dice {
	return &Dice{}
}

// IntN rolls 1dn and shifts the result to start at zero
func (d *Dice) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	roll, err := dice.NewRoll(1, n)
	if err != nil {
		// the toolkit only rejects non-positive sizes, which n <= 1 excludes
		return rand.IntN(n)
	}
	return roll.GetValue() - 1
}

// Seeded is a reproducible source for tests and --seed runs
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a source whose sequence is fixed by seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform value in [0, n)
func (s *Seeded) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return s.rng.IntN(n)
}

// Pick returns a uniformly chosen element of items. ok is false when items
// is empty.
func Pick[T any](src Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[src.IntN(len(items))], true
}
