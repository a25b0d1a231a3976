package team_test

import (
	"encoding/json"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/island-randomizer/internal/catalog"
	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/team"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/random"
	"github.com/KirkDiggler/island-randomizer/internal/testutils"
)

type StateTestSuite struct {
	suite.Suite
	cat *catalog.Catalog
}

func (s *StateTestSuite) SetupTest() {
	horizons := testutils.NewSpirit("Horizons Spirit", 0, 0, 0, 0, 20)
	horizons.Expansion = entities.ExpansionHorizons

	s.cat = &catalog.Catalog{
		Spirits: []entities.Spirit{
			testutils.NewSpirit("A", 20, 0, 0, 0, 0),
			testutils.NewSpirit("B", 0, 20, 0, 0, 0),
			testutils.NewSpirit("Even", 10, 10, 10, 10, 10),
			testutils.NewSpirit("Fearful", 0, 0, 20, 0, 0),
			horizons,
		},
	}
}

func (s *StateTestSuite) requirePartitionInvariant(state team.State) {
	names := state.Spirits.Names()
	sort.Strings(names)
	s.Require().Equal([]string{"A", "B", "Even", "Fearful", "Horizons Spirit"}, names)
}

func (s *StateTestSuite) TestNewState() {
	state := team.NewState(s.cat)

	s.Len(state.Spirits.Available, 5)
	s.Empty(state.Spirits.Chosen)
	s.Equal(entities.DefaultTeamSize, state.TeamSize)
	s.Equal(entities.DefaultMADTarget, state.MADTarget)
	s.Equal(entities.TowardsBalance, state.Direction)
	s.Equal(entities.DefaultSpiritFilter(), state.Filter)
	s.Empty(state.Spirits.DisabledNames())
}

func (s *StateTestSuite) TestTwoSpiritTeam() {
	cat := &catalog.Catalog{Spirits: []entities.Spirit{
		testutils.NewSpirit("A", 20, 0, 0, 0, 0),
		testutils.NewSpirit("B", 0, 20, 0, 0, 0),
	}}

	for _, direction := range []entities.Direction{entities.TowardsBalance, entities.TowardsImbalance} {
		state := team.NewState(cat).SetTeamSize(2).SetMADTarget(1).SetDirection(direction)

		next, _ := state.Randomize(random.NewSeeded(5))

		s.ElementsMatch([]string{"A", "B"}, chosenNames(next))
		s.InDelta(4.8, next.MAD(), 1e-12)

		averages := next.StatAverages()
		s.Require().Len(averages, 5)
		s.Equal(entities.StatOffense, averages[0].Stat)
		s.InDelta(10.0, averages[0].Value, 1e-12)
		s.InDelta(10.0, averages[1].Value, 1e-12)
		s.InDelta(0.0, averages[4].Value, 1e-12)
	}
}

func (s *StateTestSuite) TestEmptyTeamQueries() {
	state := team.NewState(s.cat)

	s.True(math.IsNaN(state.MAD()))
	for _, avg := range state.StatAverages() {
		s.True(math.IsNaN(avg.Value), string(avg.Stat))
	}
}

func (s *StateTestSuite) TestChooseAndUnchoose() {
	state := team.NewState(s.cat).SetDisabled("A", true)

	chosen := state.Choose("A")
	s.Equal([]string{"A"}, chosenNames(chosen))
	s.requirePartitionInvariant(chosen)

	back := chosen.Unchoose("A")
	entry, ok := back.Spirits.FindAvailable("A")
	s.Require().True(ok)
	s.True(entry.Disabled, "disabled flag survives the round trip")
	s.Empty(back.Spirits.Chosen)

	s.Equal(back, back.Unchoose("A"), "unchoose of an available spirit is a no-op")
	s.Equal(state, state.Choose("Nobody"))
	s.Equal(state, state.SetDisabled("Nobody", true))
}

func (s *StateTestSuite) TestToggleDisabled() {
	state := team.NewState(s.cat).ToggleDisabled("B")
	s.Equal([]string{"B"}, state.Spirits.DisabledNames())

	state = state.Choose("B").ToggleDisabled("B")
	s.Empty(state.Spirits.DisabledNames(), "chosen spirits can be toggled too")

	s.Equal(state, state.ToggleDisabled("Nobody"))
}

func (s *StateTestSuite) TestTrashTeamKeepsDisabledFlags() {
	state := team.NewState(s.cat).
		Choose("A").
		Choose("B").
		SetDisabled("B", true)

	trashed := state.TrashTeam()

	s.Empty(trashed.Spirits.Chosen)
	s.requirePartitionInvariant(trashed)
	a, _ := trashed.Spirits.FindAvailable("A")
	b, _ := trashed.Spirits.FindAvailable("B")
	s.False(a.Disabled)
	s.True(b.Disabled)
	s.Len(state.Spirits.Chosen, 2, "receiver is untouched")
}

func (s *StateTestSuite) TestFilterToggles() {
	state := team.NewState(s.cat)
	s.Len(state.Visible(), 5)

	noHorizons := state.ToggleExpansion(entities.ExpansionHorizons)
	s.NotContains(visibleNames(noHorizons), "Horizons Spirit")

	noOffense := state.ToggleStat(entities.StatOffense)
	s.NotContains(visibleNames(noOffense), "A")
	s.Contains(visibleNames(noOffense), "Even", "any shown major stat keeps a spirit visible")

	noLow := state.ToggleComplexity(entities.ComplexityLow)
	s.Empty(noLow.Visible())

	s.Len(state.Visible(), 5, "toggles return new states")
}

func (s *StateTestSuite) TestSliders() {
	state := team.NewState(s.cat)

	s.Equal(0, state.SetTeamSize(-3).TeamSize)
	s.Equal(4, state.SetTeamSize(4).TeamSize)
	s.Equal(2.5, state.SetMADTarget(2.5).MADTarget)
	s.Equal(entities.TowardsImbalance, state.SetDirection(entities.TowardsImbalance).Direction)
	s.Equal(entities.TowardsBalance, state.SetDirection("sideways").Direction)
}

func (s *StateTestSuite) TestRandomizeSkipsHiddenAndDisabled() {
	state := team.NewState(s.cat).
		SetTeamSize(5).
		SetDisabled("Fearful", true).
		ToggleExpansion(entities.ExpansionHorizons)

	next, result := state.Randomize(random.NewSeeded(11))

	s.ElementsMatch([]string{"A", "B", "Even"}, chosenNames(next))
	s.Len(result.Picks, 3, "the team ends up smaller than requested")
	s.requirePartitionInvariant(next)
}

func (s *StateTestSuite) TestRandomizeKeepsChosen() {
	state := team.NewState(s.cat).SetTeamSize(3).Choose("Fearful")

	next, result := state.Randomize(random.NewSeeded(3))

	s.Len(next.Spirits.Chosen, 3)
	s.Contains(chosenNames(next), "Fearful")
	s.Equal(2, result.Plan.Total())
}

func (s *StateTestSuite) TestRandomizeDeterministic() {
	state := team.NewState(s.cat).SetTeamSize(3)

	first, _ := state.Randomize(random.NewSeeded(42))
	second, _ := state.Randomize(random.NewSeeded(42))

	s.Equal(first, second)
}

func (s *StateTestSuite) TestPartitionInvariantOverOperations() {
	state := team.NewState(s.cat).SetTeamSize(3)
	src := random.NewSeeded(8)

	for i := 0; i < 20; i++ {
		state, _ = state.Randomize(src)
		s.requirePartitionInvariant(state)
		state = state.Unchoose(state.Spirits.Chosen[0].Name()).ToggleDisabled("Even")
		s.requirePartitionInvariant(state)
		if i%3 == 0 {
			state = state.TrashTeam()
		}
	}
}

func (s *StateTestSuite) TestSaveStateRoundTrip() {
	state := team.NewState(s.cat).
		ToggleExpansion(entities.ExpansionHorizons).
		SetTeamSize(4).
		SetMADTarget(2).
		SetDirection(entities.TowardsImbalance).
		SetDisabled("B", true).
		Choose("A").
		SetDisabled("A", true)

	save := team.ToSaveState(state)
	s.ElementsMatch([]string{"A", "B"}, save.Disabled)

	restored := team.FromSaveState(s.cat, &save)

	s.Empty(restored.Spirits.Chosen, "chosen always starts empty")
	s.Equal(state.Filter, restored.Filter)
	s.Equal(4, restored.TeamSize)
	s.Equal(2.0, restored.MADTarget)
	s.Equal(entities.TowardsImbalance, restored.Direction)
	s.ElementsMatch([]string{"A", "B"}, restored.Spirits.DisabledNames())
	s.requirePartitionInvariant(restored)
}

func (s *StateTestSuite) TestSaveStateIsDetached() {
	state := team.NewState(s.cat)
	save := team.ToSaveState(state)

	save.Filter.Stats[0] = "mangled"
	*save.TeamSize = 9

	s.Equal(entities.DefaultSpiritFilter(), state.Filter)
	s.Equal(entities.DefaultTeamSize, state.TeamSize)
}

func (s *StateTestSuite) TestFromPartialSaveState() {
	s.Equal(team.NewState(s.cat), team.FromSaveState(s.cat, nil))
	s.Equal(team.NewState(s.cat), team.FromSaveState(s.cat, &entities.TeamSaveState{}))

	size := -2
	bogus := entities.Direction("sideways")
	restored := team.FromSaveState(s.cat, &entities.TeamSaveState{
		TeamSize:  &size,
		Direction: &bogus,
		Disabled:  []string{"Retired Spirit", "Even"},
	})

	s.Equal(0, restored.TeamSize)
	s.Equal(entities.DefaultBalanceDirection, restored.Direction)
	s.Equal(entities.DefaultMADTarget, restored.MADTarget)
	s.Equal([]string{"Even"}, restored.Spirits.DisabledNames())
}

func (s *StateTestSuite) TestFromJSONSaveStateFillsMissingFilterAxes() {
	var save entities.TeamSaveState
	s.Require().NoError(json.Unmarshal([]byte(`{"filter":{"expansions":["Base"]},"team_size":3}`), &save))

	restored := team.FromSaveState(s.cat, &save)

	s.Equal(entities.Complexities, restored.Filter.Complexities)
	s.Equal(entities.StatList, restored.Filter.Stats)
	s.Equal([]entities.Expansion{entities.ExpansionBase}, restored.Filter.Expansions)
	s.Equal(3, restored.TeamSize)
	s.Equal(entities.DefaultMADTarget, restored.MADTarget)
	s.ElementsMatch([]string{"A", "B", "Even", "Fearful"}, visibleNames(restored))

	next, _ := restored.Randomize(random.NewSeeded(5))
	s.Len(next.Spirits.Chosen, 3)
}

func (s *StateTestSuite) TestEmptyFilterAxisSurvivesJSON() {
	state := team.NewState(s.cat)
	for _, stat := range entities.StatList {
		state = state.ToggleStat(stat)
	}
	s.Empty(state.Visible())

	data, err := json.Marshal(team.ToSaveState(state))
	s.Require().NoError(err)
	s.Contains(string(data), `"stats":[]`)

	var save entities.TeamSaveState
	s.Require().NoError(json.Unmarshal(data, &save))
	restored := team.FromSaveState(s.cat, &save)

	s.NotNil(restored.Filter.Stats)
	s.Empty(restored.Filter.Stats)
	s.Empty(restored.Visible(), "an axis saved empty keeps hiding everything")
}

func TestStateTestSuite(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}

func chosenNames(state team.State) []string {
	names := make([]string, 0, len(state.Spirits.Chosen))
	for _, e := range state.Spirits.Chosen {
		names = append(names, e.Name())
	}
	return names
}

func visibleNames(state team.State) []string {
	var names []string
	for _, e := range state.Visible() {
		names = append(names, e.Name())
	}
	return names
}
