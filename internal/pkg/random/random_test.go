package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/island-randomizer/internal/pkg/random"
)

func TestSeeded_Reproducible(t *testing.T) {
	a := random.NewSeeded(42)
	b := random.NewSeeded(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSeeded_Range(t *testing.T) {
	src := random.NewSeeded(7)
	for i := 0; i < 200; i++ {
		v := src.IntN(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
	assert.Zero(t, src.IntN(1))
	assert.Zero(t, src.IntN(0))
}

func TestDice_Range(t *testing.T) {
	src := random.NewDice()
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := src.IntN(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 4, "every face should come up over 500 rolls")
	assert.Zero(t, src.IntN(1))
}

func TestPick(t *testing.T) {
	src := random.NewSeeded(1)

	_, ok := random.Pick(src, []string{})
	assert.False(t, ok)

	item, ok := random.Pick(src, []string{"only"})
	assert.True(t, ok)
	assert.Equal(t, "only", item)
}
