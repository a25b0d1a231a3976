// Package main is the entry point for the island randomizer CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/island-randomizer/internal/config"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
)

// cli carries the parsed settings and services between cobra hooks
type cli struct {
	redisAddr   string
	catalogPath string
	logLevel    string
	seed        uint64

	app *app
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "randomizer",
		Short: "Spirit team and invader ruleset randomizer",
		Long: `Randomizer builds balanced spirit teams and picks a scenario and
adversary level whose combined difficulty lands in a target range.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	flags := root.PersistentFlags()
	flags.StringVar(&c.redisAddr, "redis", "", "Redis address for the profile store (env RANDOMIZER_REDIS_ADDR)")
	flags.StringVar(&c.catalogPath, "catalog", "", "YAML catalog replacing the built-in one (env RANDOMIZER_CATALOG)")
	flags.StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error (env RANDOMIZER_LOG_LEVEL)")
	flags.Uint64Var(&c.seed, "seed", 0, "seed for reproducible picks (env RANDOMIZER_SEED)")

	root.AddCommand(
		c.catalogCmd(),
		c.teamCmd(),
		c.rulesCmd(),
		c.profileCmd(),
	)
	return root
}

// setup merges flags over the environment, installs the logger and builds
// the services
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("redis") {
		cfg.RedisAddr = c.redisAddr
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = c.catalogPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("seed") {
		seed := c.seed
		cfg.Seed = &seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	c.app, err = newApp(cmd.Context(), cfg)
	return err
}

func (c *cli) teardown(*cobra.Command, []string) error {
	if c.app == nil {
		return nil
	}
	return c.app.close()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
