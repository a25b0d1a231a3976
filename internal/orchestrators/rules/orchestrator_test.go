package rules_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/island-randomizer/internal/catalog"
	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/rules"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/clock"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/idgen"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/random"
	randommock "github.com/KirkDiggler/island-randomizer/internal/pkg/random/mock"
	"github.com/KirkDiggler/island-randomizer/internal/repositories/profile"
	profilemock "github.com/KirkDiggler/island-randomizer/internal/repositories/profile/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	cat          *catalog.Catalog
	clock        *clock.Fixed
	repo         profile.Repository
	orchestrator rules.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cat = catalog.Default()
	s.clock = clock.NewFixed(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))
	s.repo = profile.NewInMemory()

	var err error
	s.orchestrator, err = rules.NewOrchestrator(&rules.Config{
		Catalog:     s.cat,
		Random:      random.NewSeeded(7),
		ProfileRepo: s.repo,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("profile"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := rules.NewOrchestrator(&rules.Config{Catalog: s.cat})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.NotContains(fields, "Catalog")
	s.Contains(fields, "Random")

	_, err = rules.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRandomizeDefaultCatalog() {
	state := rules.NewState(s.cat).SetRange(8, 10)

	out, err := s.orchestrator.Randomize(s.ctx, &rules.RandomizeInput{State: state})

	s.Require().NoError(err)
	s.Zero(out.Score, "the default catalog can always hit 8 to 10")
	s.Require().NotNil(out.Adversary)
	total := out.State.TotalDifficulty()
	s.GreaterOrEqual(total, 8.0)
	s.LessOrEqual(total, 10.0)
	s.Empty(state.Rules.Chosen)

	_, err = s.orchestrator.Randomize(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveKeepsTeamSettings() {
	size := 4
	_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: &entities.Profile{
		ID:   "shared",
		Team: &entities.TeamSaveState{TeamSize: &size},
	}})
	s.Require().NoError(err)

	saved, err := s.orchestrator.SaveProfile(s.ctx, &rules.SaveProfileInput{
		ProfileID: "shared",
		Name:      "campaign",
		State:     rules.NewState(s.cat).SetRange(4, 6).SetDisabled("Blitz", true),
	})
	s.Require().NoError(err)

	s.Equal("campaign", saved.Profile.Name)
	s.Require().NotNil(saved.Profile.Team)
	s.Equal(4, *saved.Profile.Team.TeamSize)
	s.Equal([]string{"Blitz"}, saved.Profile.Rules.Disabled)

	loaded, err := s.orchestrator.LoadProfile(s.ctx, &rules.LoadProfileInput{ProfileID: "shared"})
	s.Require().NoError(err)
	s.Equal(entities.DifficultyRange{Min: 4, Max: 6}, loaded.State.Range)
	s.Equal([]string{"Blitz"}, loaded.State.Rules.DisabledNames())
	s.Empty(loaded.State.Rules.Chosen)
}

func (s *OrchestratorTestSuite) TestSaveNewProfile() {
	saved, err := s.orchestrator.SaveProfile(s.ctx, &rules.SaveProfileInput{State: rules.NewState(s.cat)})
	s.Require().NoError(err)
	s.Equal("profile_1", saved.Profile.ID)
	s.Equal(s.clock.Now(), saved.Profile.UpdatedAt)
	s.Nil(saved.Profile.Team)
}

func (s *OrchestratorTestSuite) TestLoadProfileErrors() {
	_, err := s.orchestrator.LoadProfile(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.LoadProfile(s.ctx, &rules.LoadProfileInput{ProfileID: "missing"})
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMeta(err)["profile_id"])
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestRandomizeWithBothSidesChosen(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := randommock.NewMockSource(ctrl)

	orch, err := rules.NewOrchestrator(&rules.Config{
		Catalog:     catalog.Default(),
		Random:      src,
		ProfileRepo: profilemock.NewMockRepository(ctrl),
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("profile"),
	})
	require.NoError(t, err)

	state := rules.NewState(catalog.Default()).
		Choose("Blitz", 0).
		Choose("The Kingdom of Sweden", 3)
	// only the implicit zero pair is left to draw from
	src.EXPECT().IntN(1).Return(0)

	out, err := orch.Randomize(context.Background(), &rules.RandomizeInput{State: state})
	require.NoError(t, err)
	assert.Nil(t, out.Scenario)
	assert.Nil(t, out.Adversary)
	assert.Equal(t, state, out.State)
	assert.InDelta(t, 5.0, out.State.TotalDifficulty(), 1e-12)
}
