package entities_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/testutils"
)

type SpiritFilterTestSuite struct {
	suite.Suite
	filter entities.SpiritFilter
}

func (s *SpiritFilterTestSuite) SetupTest() {
	s.filter = entities.DefaultSpiritFilter()
}

func (s *SpiritFilterTestSuite) TestDefaultShowsEverySpiritWithAMajorStat() {
	s.True(s.filter.Matches(testutils.NewSpirit("Offense", 20, 0, 0, 0, 0)))
	s.True(s.filter.Matches(testutils.NewSpirit("Exactly Half", 0, 0, 10, 0, 0)))
	s.False(s.filter.Matches(testutils.NewSpirit("No Major", 9, 9, 9, 9, 9)))
}

func (s *SpiritFilterTestSuite) TestComplexityAndExpansionAxes() {
	spirit := testutils.NewSpirit("Spirit", 20, 0, 0, 0, 0)

	hidden := s.filter.ToggleComplexity(entities.ComplexityLow)
	s.False(hidden.Matches(spirit))
	s.True(hidden.ToggleComplexity(entities.ComplexityLow).Matches(spirit))

	hidden = s.filter.ToggleExpansion(entities.ExpansionBase)
	s.False(hidden.Matches(spirit))
}

func (s *SpiritFilterTestSuite) TestStatAxisNeedsOneShownMajorStat() {
	spirit := testutils.NewSpirit("Two Majors", 15, 0, 12, 0, 0)

	f := s.filter.ToggleStat(entities.StatOffense)
	s.True(f.Matches(spirit), "fear is still shown")

	f = f.ToggleStat(entities.StatFear)
	s.False(f.Matches(spirit))
}

func (s *SpiritFilterTestSuite) TestToggleDoesNotAliasTheOriginal() {
	f := s.filter.ToggleStat(entities.StatUtility)

	s.Len(s.filter.Stats, len(entities.StatList))
	s.Len(f.Stats, len(entities.StatList)-1)
	s.NotContains(f.Stats, entities.StatUtility)
}

func (s *SpiritFilterTestSuite) TestClone() {
	clone := s.filter.Clone()
	clone.Expansions[0] = "Other"

	s.Equal(entities.ExpansionBase, s.filter.Expansions[0])
}

func (s *SpiritFilterTestSuite) TestWithDefaultsFillsOnlyNilAxes() {
	partial := entities.SpiritFilter{
		Expansions: []entities.Expansion{entities.ExpansionHorizons},
		Stats:      []entities.Stat{},
	}

	filled := partial.WithDefaults()

	s.Equal(entities.Complexities, filled.Complexities)
	s.Equal([]entities.Expansion{entities.ExpansionHorizons}, filled.Expansions)
	s.NotNil(filled.Stats)
	s.Empty(filled.Stats)
	s.Nil(partial.Complexities)
}

func TestSpiritFilterTestSuite(t *testing.T) {
	suite.Run(t, new(SpiritFilterTestSuite))
}

func TestRuleFilter(t *testing.T) {
	f := entities.DefaultRuleFilter()
	scenario := testutils.NewScenario("Blitz", 0)
	special := testutils.NewSpecialScenario("Second Wave", 1)
	adversary := testutils.NewAdversary("Sweden", 1, 2, 3)

	assert.True(t, f.Matches(scenario))
	assert.True(t, f.Matches(adversary))
	assert.False(t, f.Matches(special), "special scenarios start hidden")

	f = f.ToggleType(entities.RuleTypeSpecialScenario)
	assert.True(t, f.Matches(special))

	f = f.ToggleExpansion(entities.ExpansionBase)
	assert.False(t, f.Matches(scenario))
	assert.False(t, f.Matches(adversary))

	filled := entities.RuleFilter{Expansions: []entities.Expansion{entities.ExpansionBase}}.WithDefaults()
	assert.Equal(t, entities.DefaultRuleFilter().Types, filled.Types)
	assert.True(t, filled.Matches(scenario))
}

func TestDirectionSatisfies(t *testing.T) {
	testCases := []struct {
		name      string
		direction entities.Direction
		mad       float64
		expected  bool
	}{
		{"below target towards balance", entities.TowardsBalance, 2, true},
		{"on target towards balance", entities.TowardsBalance, 3, false},
		{"above target towards imbalance", entities.TowardsImbalance, 4, true},
		{"on target towards imbalance", entities.TowardsImbalance, 3, false},
		{"nan towards balance", entities.TowardsBalance, math.NaN(), false},
		{"nan towards imbalance", entities.TowardsImbalance, math.NaN(), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.direction.Satisfies(tc.mad, 3))
		})
	}

	assert.True(t, entities.TowardsImbalance.IsValid())
	assert.False(t, entities.Direction("sideways").IsValid())
}

func TestDifficultyRange(t *testing.T) {
	r := entities.NewDifficultyRange(10, 4)
	assert.Equal(t, entities.DifficultyRange{Min: 4, Max: 10}, r)
	assert.Equal(t, r, entities.DifficultyRange{Min: 10, Max: 4}.Normalized())
	assert.Equal(t, entities.DifficultyRange{Min: 1, Max: 7}, r.Shift(3))
}

func TestRuleDifficulty(t *testing.T) {
	sweden := testutils.NewAdversary("Sweden", 1, 2, 4)

	assert.Equal(t, 4.0, entities.RuleDifficulty(sweden, 2))
	assert.Equal(t, 0.0, entities.RuleDifficulty(sweden, 3), "level past the table")
	assert.Equal(t, 0.0, entities.RuleDifficulty(sweden, -1))
	assert.Equal(t, 3.0, entities.RuleDifficulty(testutils.NewScenario("Rituals", 3), 5), "level ignored for scenarios")

	assert.Equal(t, 1, sweden.LevelOf(2))
	assert.Equal(t, -1, sweden.LevelOf(3))
}

func TestSaveStateClone(t *testing.T) {
	size := 3
	filter := entities.DefaultSpiritFilter()
	original := entities.TeamSaveState{
		Filter:   &filter,
		TeamSize: &size,
		Disabled: []string{"Thunderspeaker"},
	}

	clone := original.Clone()
	*clone.TeamSize = 5
	clone.Filter.Stats[0] = entities.StatUtility
	clone.Disabled[0] = "River"

	assert.Equal(t, 3, size)
	assert.Equal(t, entities.StatOffense, filter.Stats[0])
	assert.Equal(t, []string{"Thunderspeaker"}, original.Disabled)
	assert.Nil(t, clone.MADTarget)

	rng := entities.NewDifficultyRange(2, 8)
	rules := entities.RulesSaveState{Range: &rng}
	rulesClone := rules.Clone()
	rulesClone.Range.Max = 12
	assert.Equal(t, 8.0, rng.Max)
	assert.Nil(t, rulesClone.Disabled)
}
