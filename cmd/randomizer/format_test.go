package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/island-randomizer/internal/catalog"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/rules"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/team"
)

func TestOneDecimal(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{4.8, "4.8"},
		{10, "10"},
		{6.25, "6.3"},
		{3.14159, "3.1"},
		{0.04, "0"},
		{-0.04, "0"},
		{-1.26, "-1.3"},
		{math.NaN(), "-"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, oneDecimal(tc.value))
		})
	}
}

func TestLevelLabel(t *testing.T) {
	assert.Equal(t, "Base", levelLabel(0))
	assert.Equal(t, "L1", levelLabel(1))
	assert.Equal(t, "L6", levelLabel(6))
}

func TestParseRuleChoice(t *testing.T) {
	testCases := []struct {
		arg   string
		name  string
		level int
	}{
		{"Blitz", "Blitz", 0},
		{"The Kingdom of Sweden:3", "The Kingdom of Sweden", 3},
		{"The Kingdom of Sweden:", "The Kingdom of Sweden:", 0},
		{"Odd: Name", "Odd: Name", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.arg, func(t *testing.T) {
			name, level := parseRuleChoice(tc.arg)
			assert.Equal(t, tc.name, name)
			assert.Equal(t, tc.level, level)
		})
	}
}

func TestPrintTeam(t *testing.T) {
	state := team.NewState(catalog.Default())

	var buf bytes.Buffer
	require.NoError(t, printTeam(&buf, state))
	assert.Contains(t, buf.String(), "MAD: - (target 3, towards balance)")

	buf.Reset()
	state = state.Choose("Lightning's Swift Strike")
	require.NoError(t, printTeam(&buf, state))
	assert.Contains(t, buf.String(), "Lightning's Swift Strike")
	assert.Contains(t, buf.String(), "offense 20, control 6.5, fear 10, defense 2, utility 7.5")
	assert.Contains(t, buf.String(), "MAD: 4.6")
}

func TestPrintChosenRules(t *testing.T) {
	state := rules.NewState(catalog.Default()).
		Choose("The Kingdom of Sweden", 2).
		Choose("Rituals of Terror", 0)

	var buf bytes.Buffer
	require.NoError(t, printChosenRules(&buf, state))

	out := buf.String()
	assert.Contains(t, out, "L2")
	assert.Contains(t, out, "total difficulty: 6 (target 0-15)")
}
