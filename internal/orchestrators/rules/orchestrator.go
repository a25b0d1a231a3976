// Package rules implements the invader view: adversaries and scenarios,
// their chosen levels, and difficulty-matched randomization.
package rules

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/island-randomizer/internal/catalog"
	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/clock"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/idgen"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/random"
	"github.com/KirkDiggler/island-randomizer/internal/repositories/profile"
)

// Service defines the interface for invader ruleset operations
type Service interface {
	Randomize(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error)
	SaveProfile(ctx context.Context, input *SaveProfileInput) (*SaveProfileOutput, error)
	LoadProfile(ctx context.Context, input *LoadProfileInput) (*LoadProfileOutput, error)
}

// Config holds the dependencies for the rules orchestrator
type Config struct {
	Catalog     *catalog.Catalog
	Random      random.Source
	ProfileRepo profile.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog     *catalog.Catalog
	random      random.Source
	profileRepo profile.Repository
	clock       clock.Clock
	idGen       idgen.Generator
}

// NewOrchestrator creates a new rules orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog:     cfg.Catalog,
		random:      cfg.Random,
		profileRepo: cfg.ProfileRepo,
		clock:       cfg.Clock,
		idGen:       cfg.IDGenerator,
	}, nil
}

// Randomize fills the empty sides of the chosen partition
func (o *orchestrator) Randomize(_ context.Context, input *RandomizeInput) (*RandomizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	next, result := input.State.Randomize(o.random)

	attrs := []any{
		"range_min", next.Range.Min,
		"range_max", next.Range.Max,
		"score", result.Score,
		"total_difficulty", next.TotalDifficulty(),
	}
	if result.Scenario != nil {
		attrs = append(attrs, "scenario", result.Scenario.Name)
	}
	if result.Adversary != nil {
		attrs = append(attrs, "adversary", result.Adversary.Name, "level", result.Adversary.Level)
	}
	slog.Info("Rules randomized", attrs...)

	return &RandomizeOutput{
		State:     next,
		Scenario:  result.Scenario,
		Adversary: result.Adversary,
		Score:     result.Score,
	}, nil
}

// SaveProfile stores the reduced invader view under a profile, keeping any
// spirit view part already stored there
func (o *orchestrator) SaveProfile(ctx context.Context, input *SaveProfileInput) (*SaveProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p, err := o.profileFor(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		p.Name = input.Name
	}
	save := ToSaveState(input.State)
	p.Rules = &save
	p.UpdatedAt = o.clock.Now()

	out, err := o.profileRepo.Save(ctx, profile.SaveInput{Profile: p})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	slog.Info("Rules profile saved",
		"profile_id", p.ID,
		"disabled", len(save.Disabled),
	)

	return &SaveProfileOutput{Profile: out.Profile}, nil
}

func (o *orchestrator) profileFor(ctx context.Context, id string) (*entities.Profile, error) {
	now := o.clock.Now()
	if id == "" {
		return &entities.Profile{ID: o.idGen.Generate(), CreatedAt: now, UpdatedAt: now}, nil
	}

	out, err := o.profileRepo.Get(ctx, profile.GetInput{ID: id})
	switch {
	case errors.IsNotFound(err):
		return &entities.Profile{ID: id, CreatedAt: now, UpdatedAt: now}, nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to get profile")
	}
	return out.Profile, nil
}

// LoadProfile rebuilds the invader view from a stored profile
func (o *orchestrator) LoadProfile(ctx context.Context, input *LoadProfileInput) (*LoadProfileOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	out, err := o.profileRepo.Get(ctx, profile.GetInput{ID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	state := FromSaveState(o.catalog, out.Profile.Rules)

	slog.Info("Rules profile loaded",
		"profile_id", input.ProfileID,
		"range_min", state.Range.Min,
		"range_max", state.Range.Max,
	)

	return &LoadProfileOutput{
		State:   state,
		Profile: out.Profile,
	}, nil
}
