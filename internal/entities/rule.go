package entities

import "slices"

// RuleType tags the variant of an invader ruleset
type RuleType string

// RuleType constants
const (
	RuleTypeScenario        RuleType = "Scenario"
	RuleTypeSpecialScenario RuleType = "Special Scenario"
	RuleTypeAdversary       RuleType = "Adversary"
)

// RuleTypes lists the rule types in display order
var RuleTypes = []RuleType{
	RuleTypeScenario,
	RuleTypeSpecialScenario,
	RuleTypeAdversary,
}

// IsValid reports whether t is a known rule type
func (t RuleType) IsValid() bool {
	return slices.Contains(RuleTypes, t)
}

// IsScenario reports whether t is either scenario variant
func (t RuleType) IsScenario() bool {
	return t == RuleTypeScenario || t == RuleTypeSpecialScenario
}

// Rule is an invader ruleset. The set of implementations is closed:
// *Scenario and *Adversary.
type Rule interface {
	GetName() string
	GetExpansion() Expansion
	GetType() RuleType
	isRule()
}

// Scenario is a scenario or special scenario with a single difficulty
type Scenario struct {
	Name       string    `json:"name" yaml:"name"`
	Image      string    `json:"image,omitempty" yaml:"image,omitempty"`
	Difficulty float64   `json:"difficulty" yaml:"difficulty"`
	Expansion  Expansion `json:"expansion" yaml:"expansion"`
	Special    bool      `json:"special,omitempty" yaml:"special,omitempty"`
}

// GetName returns the identity key of the scenario
func (s *Scenario) GetName() string { return s.Name }

// GetExpansion returns the expansion of the scenario
func (s *Scenario) GetExpansion() Expansion { return s.Expansion }

// GetType returns RuleTypeSpecialScenario for special scenarios and
// RuleTypeScenario otherwise
func (s *Scenario) GetType() RuleType {
	if s.Special {
		return RuleTypeSpecialScenario
	}
	return RuleTypeScenario
}

func (s *Scenario) isRule() {}

// Adversary is an adversary with one difficulty per level, level 0 being base
type Adversary struct {
	Name         string    `json:"name" yaml:"name"`
	Image        string    `json:"image,omitempty" yaml:"image,omitempty"`
	Difficulties []float64 `json:"difficulties" yaml:"difficulties"`
	Expansion    Expansion `json:"expansion" yaml:"expansion"`
}

// GetName returns the identity key of the adversary
func (a *Adversary) GetName() string { return a.Name }

// GetExpansion returns the expansion of the adversary
func (a *Adversary) GetExpansion() Expansion { return a.Expansion }

// GetType always returns RuleTypeAdversary
func (a *Adversary) GetType() RuleType { return RuleTypeAdversary }

func (a *Adversary) isRule() {}

// HasLevel reports whether level indexes the difficulty table
func (a *Adversary) HasLevel(level int) bool {
	return level >= 0 && level < len(a.Difficulties)
}

// LevelOf returns the first level whose difficulty equals value, or -1
func (a *Adversary) LevelOf(value float64) int {
	for i, d := range a.Difficulties {
		if d == value {
			return i
		}
	}
	return -1
}

// RuleDifficulty returns the difficulty a rule contributes. Level is only
// read for adversaries; an out-of-range level contributes 0.
func RuleDifficulty(rule Rule, level int) float64 {
	switch r := rule.(type) {
	case *Scenario:
		return r.Difficulty
	case *Adversary:
		if !r.HasLevel(level) {
			return 0
		}
		return r.Difficulties[level]
	default:
		return 0
	}
}
