package testutils

import (
	"github.com/KirkDiggler/island-randomizer/internal/entities"
)

// NewSpirit creates a Base-game, low-complexity spirit with the given stats
// in StatList order
func NewSpirit(name string, offense, control, fear, defense, utility float64) entities.Spirit {
	return entities.Spirit{
		Name:       name,
		Complexity: entities.ComplexityLow,
		Expansion:  entities.ExpansionBase,
		Stats: entities.Stats{
			Offense: offense,
			Control: control,
			Fear:    fear,
			Defense: defense,
			Utility: utility,
		},
	}
}

// NewScenario creates a Base-game scenario
func NewScenario(name string, difficulty float64) *entities.Scenario {
	return &entities.Scenario{
		Name:       name,
		Difficulty: difficulty,
		Expansion:  entities.ExpansionBase,
	}
}

// NewSpecialScenario creates a Base-game special scenario
func NewSpecialScenario(name string, difficulty float64) *entities.Scenario {
	s := NewScenario(name, difficulty)
	s.Special = true
	return s
}

// NewAdversary creates a Base-game adversary with one difficulty per level
func NewAdversary(name string, difficulties ...float64) *entities.Adversary {
	return &entities.Adversary{
		Name:         name,
		Difficulties: difficulties,
		Expansion:    entities.ExpansionBase,
	}
}
