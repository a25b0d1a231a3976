// Package matching picks one scenario and one adversary level whose combined
// difficulty lands closest to a target range.
//
// Every candidate scenario difficulty is paired with every candidate
// adversary difficulty; each side also offers an implicit 0 meaning "nothing
// picked on this side". The pair scores are distances from the remaining
// range, and the winners are drawn uniformly among the global minima.
package matching

import (
	"math"

	"github.com/KirkDiggler/island-randomizer/internal/engine/partition"
	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/random"
)

// NoAdversaryPenalty is added to every pair without an adversary so that,
// all else equal, a game with an adversary wins.
const NoAdversaryPenalty = 0.1

const scoreTolerance = 1e-9

// DistanceFromRange is zero inside the inclusive range [lo, hi] and the
// shortfall or overshoot outside of it
func DistanceFromRange(v, lo, hi float64) float64 {
	return math.Max(math.Max(0, lo-v), math.Max(0, v-hi))
}

// Pick records a rule moved into the chosen partition
type Pick struct {
	Name       string
	Level      int
	Difficulty float64
}

// Result is the outcome of Select
type Result struct {
	State partition.State[entities.Rule]
	// Remaining is the target range minus the difficulty chosen beforehand
	Remaining entities.DifficultyRange
	// Score is the distance of the winning pair, penalty included
	Score     float64
	Scenario  *Pick
	Adversary *Pick
}

// TotalDifficulty sums the difficulty of every chosen rule at its level
func TotalDifficulty(state partition.State[entities.Rule]) float64 {
	total := 0.0
	for _, e := range state.Chosen {
		total += entities.RuleDifficulty(e.Item, e.Level)
	}
	return total
}

// Select adds at most one scenario and at most one adversary to the chosen
// partition. A side that already has a chosen rule is left alone, and an
// empty pool on a side yields no pick there.
func Select(
	state partition.State[entities.Rule],
	visible partition.Predicate[entities.Rule],
	target entities.DifficultyRange,
	src random.Source,
) Result {
	remaining := target.Normalized().Shift(TotalDifficulty(state))
	scenarios, adversaries := candidates(state, visible)

	scenarioValues := withZero(scenarioDifficulties(scenarios))
	adversaryValues := withZero(adversaryDifficulties(adversaries))

	pairs, best := minimalPairs(scenarioValues, adversaryValues, remaining)

	result := Result{
		State:     state,
		Remaining: remaining,
		Score:     best,
	}

	scenarioValue, _ := random.Pick(src, distinctScenarioValues(pairs))
	if scenario, ok := random.Pick(src, scenariosAt(scenarios, scenarioValue)); ok {
		result.State = result.State.Choose(scenario.Name)
		result.Scenario = &Pick{Name: scenario.Name, Difficulty: scenario.Difficulty}
	}

	allowed := adversaryValuesFor(pairs, scenarioValue)
	adversary, ok := random.Pick(src, adversariesWithin(adversaries, allowed))
	if !ok {
		return result
	}
	value, _ := random.Pick(src, intersect(adversary.Difficulties, allowed))
	level := adversary.LevelOf(value)
	result.State = result.State.ChooseAt(adversary.Name, level)
	result.Adversary = &Pick{Name: adversary.Name, Level: level, Difficulty: value}

	return result
}

type pair struct {
	scenario  float64
	adversary float64
}

func score(p pair, remaining entities.DifficultyRange) float64 {
	s := DistanceFromRange(p.scenario+p.adversary, remaining.Min, remaining.Max)
	if p.adversary == 0 {
		s += NoAdversaryPenalty
	}
	return s
}

// minimalPairs scores the cross product and keeps the pairs tied for the
// lowest score, in scenario-major order
func minimalPairs(scenarioValues, adversaryValues []float64, remaining entities.DifficultyRange) ([]pair, float64) {
	best := math.Inf(1)
	var pairs []pair
	for _, sv := range scenarioValues {
		for _, av := range adversaryValues {
			p := pair{scenario: sv, adversary: av}
			s := score(p, remaining)
			switch {
			case s < best-scoreTolerance:
				best = s
				pairs = []pair{p}
			case s <= best+scoreTolerance:
				pairs = append(pairs, p)
			}
		}
	}
	return pairs, best
}

// candidates splits the eligible rules by side. A side with any chosen rule
// contributes no candidates.
func candidates(
	state partition.State[entities.Rule],
	visible partition.Predicate[entities.Rule],
) ([]*entities.Scenario, []*entities.Adversary) {
	scenarioChosen, adversaryChosen := false, false
	for _, e := range state.Chosen {
		switch e.Item.(type) {
		case *entities.Scenario:
			scenarioChosen = true
		case *entities.Adversary:
			adversaryChosen = true
		}
	}

	var scenarios []*entities.Scenario
	var adversaries []*entities.Adversary
	for _, e := range state.Eligible(visible) {
		switch r := e.Item.(type) {
		case *entities.Scenario:
			if !scenarioChosen {
				scenarios = append(scenarios, r)
			}
		case *entities.Adversary:
			if !adversaryChosen {
				adversaries = append(adversaries, r)
			}
		}
	}
	return scenarios, adversaries
}

func scenarioDifficulties(scenarios []*entities.Scenario) []float64 {
	var values []float64
	for _, s := range scenarios {
		values = appendUnique(values, s.Difficulty)
	}
	return values
}

func adversaryDifficulties(adversaries []*entities.Adversary) []float64 {
	var values []float64
	for _, a := range adversaries {
		for _, d := range a.Difficulties {
			values = appendUnique(values, d)
		}
	}
	return values
}

// withZero puts the implicit "nothing picked" value first
func withZero(values []float64) []float64 {
	if containsValue(values, 0) {
		return values
	}
	return append([]float64{0}, values...)
}

func distinctScenarioValues(pairs []pair) []float64 {
	var values []float64
	for _, p := range pairs {
		values = appendUnique(values, p.scenario)
	}
	return values
}

func adversaryValuesFor(pairs []pair, scenarioValue float64) []float64 {
	var values []float64
	for _, p := range pairs {
		if p.scenario == scenarioValue {
			values = appendUnique(values, p.adversary)
		}
	}
	return values
}

func scenariosAt(scenarios []*entities.Scenario, value float64) []*entities.Scenario {
	var out []*entities.Scenario
	for _, s := range scenarios {
		if s.Difficulty == value {
			out = append(out, s)
		}
	}
	return out
}

func adversariesWithin(adversaries []*entities.Adversary, allowed []float64) []*entities.Adversary {
	var out []*entities.Adversary
	for _, a := range adversaries {
		if len(intersect(a.Difficulties, allowed)) > 0 {
			out = append(out, a)
		}
	}
	return out
}

// intersect returns the distinct values of difficulties found in allowed,
// in level order
func intersect(difficulties, allowed []float64) []float64 {
	var out []float64
	for _, d := range difficulties {
		if containsValue(allowed, d) {
			out = appendUnique(out, d)
		}
	}
	return out
}

func appendUnique(values []float64, v float64) []float64 {
	if containsValue(values, v) {
		return values
	}
	return append(values, v)
}

func containsValue(values []float64, v float64) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
