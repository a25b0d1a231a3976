package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/rules"
)

type rulesFlags struct {
	min           float64
	max           float64
	choose        []string
	disable       []string
	hideExpansion []string
	showSpecial   bool
	manual        bool
	profileID     string
	save          bool
	name          string
}

func (c *cli) rulesCmd() *cobra.Command {
	f := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Pick a scenario and adversary level for a difficulty range",
		Long: `Rules adds the scenario and adversary level whose combined difficulty,
together with anything chosen with --choose, lands closest to --min..--max.
Adversaries are chosen as "name:level", level 0 being base.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			state := rules.NewState(c.app.catalog)
			if f.profileID != "" {
				loaded, err := c.app.rules.LoadProfile(ctx, &rules.LoadProfileInput{ProfileID: f.profileID})
				if err != nil && !(f.save && errors.IsNotFound(err)) {
					return err
				}
				if err == nil {
					state = loaded.State
				}
			}

			state, err := c.applyRulesFlags(cmd, f, state)
			if err != nil {
				return err
			}

			if !f.manual {
				out, err := c.app.rules.Randomize(ctx, &rules.RandomizeInput{State: state})
				if err != nil {
					return err
				}
				state = out.State
			}
			if err := printChosenRules(cmd.OutOrStdout(), state); err != nil {
				return err
			}

			if !f.save {
				return nil
			}
			saved, err := c.app.rules.SaveProfile(ctx, &rules.SaveProfileInput{
				ProfileID: f.profileID,
				Name:      f.name,
				State:     state,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved profile %s\n", saved.Profile.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&f.min, "min", entities.DefaultDifficultyMin, "lowest acceptable total difficulty")
	flags.Float64Var(&f.max, "max", entities.DefaultDifficultyMax, "highest acceptable total difficulty")
	flags.StringArrayVar(&f.choose, "choose", nil, `rule to choose first, "name" or "name:level" (repeatable)`)
	flags.StringArrayVar(&f.disable, "disable", nil, "rule never picked at random (repeatable)")
	flags.StringSliceVar(&f.hideExpansion, "hide-expansion", nil, "expansions to hide")
	flags.BoolVar(&f.showSpecial, "show-special", false, "allow special scenarios")
	flags.BoolVar(&f.manual, "manual", false, "only apply --choose, do not randomize")
	flags.StringVar(&f.profileID, "profile", "", "start from the settings stored in this profile")
	flags.BoolVar(&f.save, "save", false, "store the settings in --profile, or in a new profile")
	flags.StringVar(&f.name, "name", "", "profile name used with --save")

	return cmd
}

// applyRulesFlags layers the command line over state
func (c *cli) applyRulesFlags(cmd *cobra.Command, f *rulesFlags, state rules.State) (rules.State, error) {
	flags := cmd.Flags()
	vb := errors.NewValidationBuilder()

	if flags.Changed("min") || flags.Changed("max") {
		lo, hi := state.Range.Min, state.Range.Max
		if flags.Changed("min") {
			lo = f.min
		}
		if flags.Changed("max") {
			hi = f.max
		}
		state = state.SetRange(lo, hi)
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
	if f.showSpecial && !slices.Contains(state.Filter.Types, entities.RuleTypeSpecialScenario) {
		state = state.ToggleType(entities.RuleTypeSpecialScenario)
	}
	for _, name := range f.disable {
		if _, ok := c.app.catalog.Rule(name); !ok {
			vb.Fieldf("disable", "unknown rule %q", name)
			continue
		}
		state = state.SetDisabled(name, true)
	}
	for _, arg := range f.choose {
		name, level := parseRuleChoice(arg)
		rule, ok := c.app.catalog.Rule(name)
		if !ok {
			vb.Fieldf("choose", "unknown rule %q", name)
			continue
		}
		if a, isAdversary := rule.(*entities.Adversary); isAdversary && !a.HasLevel(level) {
			vb.Fieldf("choose", "%s has no level %d", name, level)
			continue
		}
		state = state.Choose(name, level)
	}

	return state, vb.Build()
}
