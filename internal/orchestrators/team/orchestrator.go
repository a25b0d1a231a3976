// Package team implements the spirit view: its immutable state, the pure
// operations on it, and the orchestrator that randomizes teams and keeps
// view settings in profiles.
package team

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

// Service defines the interface for spirit team operations
type Service interface {
	Randomize(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error)

	// Profiles keep only the spirit view part; the invader part of an
	// existing profile is preserved
	SaveProfile(ctx context.Context, input *SaveProfileInput) (*SaveProfileOutput, error)
	LoadProfile(ctx context.Context, input *LoadProfileInput) (*LoadProfileOutput, error)
}

// Config holds the dependencies for the team orchestrator
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

// NewOrchestrator creates a new team orchestrator with the provided dependencies
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

// Randomize fills the team from the visible, enabled spirits
func (o *orchestrator) Randomize(_ context.Context, input *RandomizeInput) (*RandomizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	next, result := input.State.Randomize(o.random)

	slog.Info("Team randomized",
		"team_size", next.TeamSize,
		"picked", len(result.Picks),
		"chosen", len(next.Spirits.Chosen),
		"direction", next.Direction,
		"mad", next.MAD(),
	)

	return &RandomizeOutput{
		State: next,
		Plan:  result.Plan,
		Picks: result.Picks,
	}, nil
}

// SaveProfile stores the reduced spirit view under a profile
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
	p.Team = &save
	p.UpdatedAt = o.clock.Now()

	out, err := o.profileRepo.Save(ctx, profile.SaveInput{Profile: p})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	slog.Info("Team profile saved",
		"profile_id", p.ID,
		"disabled", len(save.Disabled),
	)

	return &SaveProfileOutput{Profile: out.Profile}, nil
}

// profileFor returns the stored profile, or a fresh one when id is empty
func (o *orchestrator) profileFor(ctx context.Context, id string) (*entities.Profile, error) {
	if id == "" {
		now := o.clock.Now()
		return &entities.Profile{
			ID:        o.idGen.Generate(),
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}

	out, err := o.profileRepo.Get(ctx, profile.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			now := o.clock.Now()
			return &entities.Profile{ID: id, CreatedAt: now, UpdatedAt: now}, nil
		}
		return nil, errors.Wrap(err, "failed to get profile")
	}
	return out.Profile, nil
}

// LoadProfile rebuilds the spirit view from a stored profile. A profile
// saved only from the invader view yields the default spirit view.
func (o *orchestrator) LoadProfile(ctx context.Context, input *LoadProfileInput) (*LoadProfileOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	out, err := o.profileRepo.Get(ctx, profile.GetInput{ID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	state := FromSaveState(o.catalog, out.Profile.Team)

	slog.Info("Team profile loaded",
		"profile_id", input.ProfileID,
		"team_size", state.TeamSize,
	)

	return &LoadProfileOutput{
		State:   state,
		Profile: out.Profile,
	}, nil
}
