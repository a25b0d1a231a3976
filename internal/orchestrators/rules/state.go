package rules

import (
	"github.com/KirkDiggler/island-randomizer/internal/catalog"
	"github.com/KirkDiggler/island-randomizer/internal/engine/matching"
	"github.com/KirkDiggler/island-randomizer/internal/engine/partition"
	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/random"
)

// State is one immutable snapshot of the invader view
type State struct {
	Rules  partition.State[entities.Rule]
	Filter entities.RuleFilter
	Range  entities.DifficultyRange
}

// NewState puts every adversary and scenario into the available partition
// with the default filter and difficulty range
func NewState(cat *catalog.Catalog) State {
	return State{
		Rules:  partition.New(cat.Rules()),
		Filter: entities.DefaultRuleFilter(),
		Range:  entities.NewDifficultyRange(entities.DefaultDifficultyMin, entities.DefaultDifficultyMax),
	}
}

// Choose moves a rule into the chosen partition. Level applies to
// adversaries only; a level the adversary does not have falls back to base.
func (s State) Choose(name string, level int) State {
	e, ok := s.Rules.FindAvailable(name)
	if !ok {
		return s
	}
	if a, isAdversary := e.Item.(*entities.Adversary); !isAdversary || !a.HasLevel(level) {
		level = 0
	}
	s.Rules = s.Rules.ChooseAt(name, level)
	return s
}

// Unchoose moves a rule back to the available partition
func (s State) Unchoose(name string) State {
	s.Rules = s.Rules.Unchoose(name)
	return s
}

// ChangeChosenLevel sets the level of a chosen adversary. Unknown names,
// scenarios and missing levels leave the state unchanged.
func (s State) ChangeChosenLevel(name string, level int) State {
	e, ok := s.Rules.FindChosen(name)
	if !ok {
		return s
	}
	a, isAdversary := e.Item.(*entities.Adversary)
	if !isAdversary || !a.HasLevel(level) {
		return s
	}
	s.Rules = s.Rules.SetLevel(name, level)
	return s
}

// SetDisabled excludes or re-includes a rule from randomization
func (s State) SetDisabled(name string, disabled bool) State {
	s.Rules = s.Rules.SetDisabled(name, disabled)
	return s
}

// ToggleDisabled flips the disabled flag of a rule
func (s State) ToggleDisabled(name string) State {
	e, ok := s.Rules.FindAvailable(name)
	if !ok {
		e, ok = s.Rules.FindChosen(name)
	}
	if !ok {
		return s
	}
	return s.SetDisabled(name, !e.Disabled)
}

// TrashRules moves every chosen rule back to available
func (s State) TrashRules() State {
	s.Rules = s.Rules.Trash()
	return s
}

// ToggleExpansion flips whether an expansion is shown
func (s State) ToggleExpansion(e entities.Expansion) State {
	s.Filter = s.Filter.ToggleExpansion(e)
	return s
}

// ToggleType flips whether a rule type is shown
func (s State) ToggleType(t entities.RuleType) State {
	s.Filter = s.Filter.ToggleType(t)
	return s
}

// SetRange sets the target difficulty band; bounds may come in any order
func (s State) SetRange(a, b float64) State {
	s.Range = entities.NewDifficultyRange(a, b)
	return s
}

// Visible returns the available rules shown by the filter
func (s State) Visible() []partition.Entry[entities.Rule] {
	return s.Rules.Visible(s.Filter.Matches)
}

// TotalDifficulty sums the chosen rules at their chosen levels
func (s State) TotalDifficulty() float64 {
	return matching.TotalDifficulty(s.Rules)
}

// Randomize adds the scenario and adversary level that bring the total
// difficulty closest to Range
func (s State) Randomize(src random.Source) (State, matching.Result) {
	result := matching.Select(s.Rules, s.Filter.Matches, s.Range, src)
	s.Rules = result.State
	return s, result
}

// ToSaveState reduces the state to the filter, range and disabled names
func ToSaveState(s State) entities.RulesSaveState {
	filter := s.Filter.Clone()
	rng := s.Range
	return entities.RulesSaveState{
		Filter:   &filter,
		Range:    &rng,
		Disabled: s.Rules.DisabledNames(),
	}
}

// FromSaveState rebuilds a state from the catalog and a save state. Nothing
// is chosen, missing fields take their defaults and unknown disabled names
// are ignored.
func FromSaveState(cat *catalog.Catalog, save *entities.RulesSaveState) State {
	s := NewState(cat)
	if save == nil {
		return s
	}
	if save.Filter != nil {
		s.Filter = save.Filter.WithDefaults()
	}
	if save.Range != nil {
		s.Range = save.Range.Normalized()
	}
	for _, name := range save.Disabled {
		s = s.SetDisabled(name, true)
	}
	return s
}
