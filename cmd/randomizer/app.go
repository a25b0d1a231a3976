package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/island-randomizer/internal/catalog"
	"github.com/KirkDiggler/island-randomizer/internal/config"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/rules"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/team"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/clock"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/idgen"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/random"
	"github.com/KirkDiggler/island-randomizer/internal/redis"
	"github.com/KirkDiggler/island-randomizer/internal/repositories/profile"
)

// app holds the services one command invocation works with
type app struct {
	catalog  *catalog.Catalog
	profiles profile.Repository
	team     team.Service
	rules    rules.Service
	close    func() error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	a := &app{
		catalog: cat,
		close:   func() error { return nil },
	}

	if cfg.RedisAddr != "" {
		client, err := redis.Connect(ctx, cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		repo, err := profile.NewRedisRepository(&profile.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		a.profiles = repo
		a.close = client.Close
		slog.Debug("Using redis profile store", "addr", cfg.RedisAddr)
	} else {
		a.profiles = profile.NewInMemory()
		slog.Debug("Using in-memory profile store")
	}

	var src random.Source = random.NewDice()
	if cfg.Seed != nil {
		src = random.NewSeeded(*cfg.Seed)
	}

	var err error
	a.team, err = team.NewOrchestrator(&team.Config{
		Catalog:     cat,
		Random:      src,
		ProfileRepo: a.profiles,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("profile"),
	})
	if err != nil {
		_ = a.close()
		return nil, errors.Wrap(err, "failed to create team orchestrator")
	}

	a.rules, err = rules.NewOrchestrator(&rules.Config{
		Catalog:     cat,
		Random:      src,
		ProfileRepo: a.profiles,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("profile"),
	})
	if err != nil {
		_ = a.close()
		return nil, errors.Wrap(err, "failed to create rules orchestrator")
	}

	return a, nil
}
