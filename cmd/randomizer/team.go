package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/team"
)

type teamFlags struct {
	size           int
	mad            float64
	direction      string
	choose         []string
	disable        []string
	hideComplexity []string
	hideExpansion  []string
	hideStat       []string
	profileID      string
	save           bool
	name           string
}

func (c *cli) teamCmd() *cobra.Command {
	f := &teamFlags{}

	cmd := &cobra.Command{
		Use:   "team",
		Short: "Randomize a spirit team",
		Long: `Team fills a spirit team up to --size from the visible, enabled spirits,
steering the team's stat spread towards or away from the --mad target.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			state := team.NewState(c.app.catalog)
			if f.profileID != "" {
				loaded, err := c.app.team.LoadProfile(ctx, &team.LoadProfileInput{ProfileID: f.profileID})
				if err != nil && !(f.save && errors.IsNotFound(err)) {
					return err
				}
				if err == nil {
					state = loaded.State
				}
			}

			state, err := c.applyTeamFlags(cmd, f, state)
			if err != nil {
				return err
			}

			out, err := c.app.team.Randomize(ctx, &team.RandomizeInput{State: state})
			if err != nil {
				return err
			}
			if err := printTeam(cmd.OutOrStdout(), out.State); err != nil {
				return err
			}

			if !f.save {
				return nil
			}
			saved, err := c.app.team.SaveProfile(ctx, &team.SaveProfileInput{
				ProfileID: f.profileID,
				Name:      f.name,
				State:     out.State,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved profile %s\n", saved.Profile.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.size, "size", entities.DefaultTeamSize, "team size, chosen spirits included")
	flags.Float64Var(&f.mad, "mad", entities.DefaultMADTarget, "mean absolute deviation target")
	flags.StringVar(&f.direction, "direction", string(entities.DefaultBalanceDirection), "balance or imbalance")
	flags.StringArrayVar(&f.choose, "choose", nil, "spirit to put in the team before randomizing (repeatable)")
	flags.StringArrayVar(&f.disable, "disable", nil, "spirit never picked at random (repeatable)")
	flags.StringSliceVar(&f.hideComplexity, "hide-complexity", nil, "complexity tiers to hide")
	flags.StringSliceVar(&f.hideExpansion, "hide-expansion", nil, "expansions to hide")
	flags.StringSliceVar(&f.hideStat, "hide-stat", nil, "prominent stats to hide")
	flags.StringVar(&f.profileID, "profile", "", "start from the settings stored in this profile")
	flags.BoolVar(&f.save, "save", false, "store the settings in --profile, or in a new profile")
	flags.StringVar(&f.name, "name", "", "profile name used with --save")

	return cmd
}

// applyTeamFlags layers the command line over state. Flags left at their
// defaults keep the loaded profile's values.
func (c *cli) applyTeamFlags(cmd *cobra.Command, f *teamFlags, state team.State) (team.State, error) {
	flags := cmd.Flags()
	vb := errors.NewValidationBuilder()

	if flags.Changed("size") {
		errors.ValidateRange("size", f.size, 0, len(c.app.catalog.Spirits), vb)
		state = state.SetTeamSize(f.size)
	}
	if flags.Changed("mad") {
		errors.ValidateFloatRange("mad", f.mad, 0, entities.MaxStat, vb)
		state = state.SetMADTarget(f.mad)
	}
	if flags.Changed("direction") {
		d := entities.Direction(f.direction)
		if !d.IsValid() {
			vb.InvalidField("direction", f.direction)
		}
		state = state.SetDirection(d)
	}
	for _, v := range f.hideComplexity {
		complexity := entities.Complexity(v)
		if !complexity.IsValid() {
			vb.InvalidField("hide-complexity", v)
			continue
		}
		if slices.Contains(state.Filter.Complexities, complexity) {
			state = state.ToggleComplexity(complexity)
		}
	}
	for _, v := range f.hideExpansion {
		expansion := entities.Expansion(v)
		if !expansion.IsValid() {
			vb.InvalidField("hide-expansion", v)
			continue
		}
		if slices.Contains(state.Filter.Expansions, expansion) {
			state = state.ToggleExpansion(expansion)
		}
	}
	for _, v := range f.hideStat {
		stat := entities.Stat(v)
		if !stat.IsValid() {
			vb.InvalidField("hide-stat", v)
			continue
		}
		if slices.Contains(state.Filter.Stats, stat) {
			state = state.ToggleStat(stat)
		}
	}
	for _, name := range f.disable {
		if _, ok := c.app.catalog.Spirit(name); !ok {
			vb.Fieldf("disable", "unknown spirit %q", name)
			continue
		}
		state = state.SetDisabled(name, true)
	}
	for _, name := range f.choose {
		if _, ok := c.app.catalog.Spirit(name); !ok {
			vb.Fieldf("choose", "unknown spirit %q", name)
			continue
		}
		state = state.Choose(name)
	}

	return state, vb.Build()
}
