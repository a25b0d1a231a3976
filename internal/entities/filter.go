package entities

import "slices"

// SpiritFilter selects which spirits are visible in the available partition
type SpiritFilter struct {
	Complexities []Complexity `json:"complexities"`
	Expansions   []Expansion  `json:"expansions"`
	Stats        []Stat       `json:"stats"`
}

// DefaultSpiritFilter shows every complexity, expansion and stat
func DefaultSpiritFilter() SpiritFilter {
	return SpiritFilter{
		Complexities: slices.Clone(Complexities),
		Expansions:   slices.Clone(Expansions),
		Stats:        slices.Clone(StatList),
	}
}

// Matches reports whether the spirit passes every axis of the filter.
// On the stat axis at least one of the spirit's major stats must be shown.
func (f SpiritFilter) Matches(spirit Spirit) bool {
	if !slices.Contains(f.Complexities, spirit.Complexity) {
		return false
	}
	if !slices.Contains(f.Expansions, spirit.Expansion) {
		return false
	}
	for _, stat := range spirit.Stats.MajorStats() {
		if slices.Contains(f.Stats, stat) {
			return true
		}
	}
	return false
}

// ToggleComplexity flips whether c is shown
func (f SpiritFilter) ToggleComplexity(c Complexity) SpiritFilter {
	f.Complexities = toggle(f.Complexities, c)
	return f
}

// ToggleExpansion flips whether e is shown
func (f SpiritFilter) ToggleExpansion(e Expansion) SpiritFilter {
	f.Expansions = toggle(f.Expansions, e)
	return f
}

// ToggleStat flips whether s is shown
func (f SpiritFilter) ToggleStat(s Stat) SpiritFilter {
	f.Stats = toggle(f.Stats, s)
	return f
}

// RuleFilter selects which rulesets are visible in the available partition
type RuleFilter struct {
	Expansions []Expansion `json:"expansions"`
	Types      []RuleType  `json:"types"`
}

// DefaultRuleFilter shows every expansion and every rule type except
// special scenarios
func DefaultRuleFilter() RuleFilter {
	return RuleFilter{
		Expansions: slices.Clone(Expansions),
		Types:      []RuleType{RuleTypeScenario, RuleTypeAdversary},
	}
}

// Matches reports whether the rule's expansion and type are both shown
func (f RuleFilter) Matches(rule Rule) bool {
	return slices.Contains(f.Expansions, rule.GetExpansion()) && slices.Contains(f.Types, rule.GetType())
}

// ToggleExpansion flips whether e is shown
func (f RuleFilter) ToggleExpansion(e Expansion) RuleFilter {
	f.Expansions = toggle(f.Expansions, e)
	return f
}

// ToggleType flips whether t is shown
func (f RuleFilter) ToggleType(t RuleType) RuleFilter {
	f.Types = toggle(f.Types, t)
	return f
}

// Clone returns a copy that shares no slices with f. A nil axis stays nil
// and an empty one stays empty.
func (f SpiritFilter) Clone() SpiritFilter {
	return SpiritFilter{
		Complexities: slices.Clone(f.Complexities),
		Expansions:   slices.Clone(f.Expansions),
		Stats:        slices.Clone(f.Stats),
	}
}

// WithDefaults returns a copy where every nil axis, one that was never
// saved, shows everything. An empty axis still hides everything.
func (f SpiritFilter) WithDefaults() SpiritFilter {
	def := DefaultSpiritFilter()
	out := f.Clone()
	if out.Complexities == nil {
		out.Complexities = def.Complexities
	}
	if out.Expansions == nil {
		out.Expansions = def.Expansions
	}
	if out.Stats == nil {
		out.Stats = def.Stats
	}
	return out
}

// Clone returns a copy that shares no slices with f
func (f RuleFilter) Clone() RuleFilter {
	return RuleFilter{
		Expansions: slices.Clone(f.Expansions),
		Types:      slices.Clone(f.Types),
	}
}

// WithDefaults returns a copy where every nil axis takes the default
func (f RuleFilter) WithDefaults() RuleFilter {
	def := DefaultRuleFilter()
	out := f.Clone()
	if out.Expansions == nil {
		out.Expansions = def.Expansions
	}
	if out.Types == nil {
		out.Types = def.Types
	}
	return out
}
