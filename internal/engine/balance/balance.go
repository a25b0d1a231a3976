// Package balance assembles spirit teams whose average stat profile lands on
// a chosen side of a mean-absolute-deviation target.
//
// Picks are made one at a time with three strategies of rising constraint:
// full-random, selective-random and careful-random. The number of picks per
// strategy is fixed by PlanPicks; they are applied full first, then
// selective, then careful, all drawing from one shrinking pool.
package balance

import (
	"github.com/KirkDiggler/island-randomizer/internal/engine/partition"
	"github.com/KirkDiggler/island-randomizer/internal/engine/stats"
	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/random"
)

// SelectiveOffset is subtracted from ceil(TargetCount/2) to size the
// selective tier. Both 0 and 1 have shipped; 1 is the current policy.
const SelectiveOffset = 1

// Strategy names the pick strategy that produced a pick
type Strategy string

// Strategy constants
const (
	StrategyFull      Strategy = "full"
	StrategySelective Strategy = "selective"
	StrategyCareful   Strategy = "careful"
)

// Params configures one randomization pass
type Params struct {
	// TargetCount is the desired total team size, chosen spirits included
	TargetCount int
	MADTarget   float64
	Direction   entities.Direction
}

// Plan holds the number of picks each strategy makes
type Plan struct {
	Full      int
	Selective int
	Careful   int
}

// Total returns the number of picks in the plan
func (p Plan) Total() int {
	return p.Full + p.Selective + p.Careful
}

// PlanPicks splits the missing team slots across the three strategies.
// One careful pick is always made when any slot is missing.
func PlanPicks(targetCount, chosenCount int) Plan {
	remaining := targetCount - chosenCount
	if remaining <= 0 {
		return Plan{}
	}

	careful := min(1, remaining)
	selective := max(0, min(ceilHalf(targetCount)-SelectiveOffset, remaining-careful))

	return Plan{
		Full:      remaining - careful - selective,
		Selective: selective,
		Careful:   careful,
	}
}

func ceilHalf(n int) int {
	return (n + 1) / 2
}

// Pick records one spirit moved into the team
type Pick struct {
	Name     string
	Strategy Strategy
	// ProjectedMAD is the team MAD right after this pick
	ProjectedMAD float64
}

// Result is the outcome of Select
type Result struct {
	State partition.State[entities.Spirit]
	Plan  Plan
	Picks []Pick
}

// Select fills the team up to params.TargetCount from the eligible
// available spirits. When the pool runs dry the remaining picks are skipped
// and the team ends up smaller than requested.
func Select(
	state partition.State[entities.Spirit],
	visible partition.Predicate[entities.Spirit],
	params Params,
	src random.Source,
) Result {
	plan := PlanPicks(params.TargetCount, len(state.Chosen))
	acc := newAccumulator(state, visible)

	for i := 0; i < plan.Full; i++ {
		acc.fullPick(src)
	}
	for i := 0; i < plan.Selective; i++ {
		acc.selectivePick(params, src)
	}
	for i := 0; i < plan.Careful; i++ {
		acc.carefulPick(params, src)
	}

	next := state
	for _, p := range acc.picks {
		next = next.Choose(p.Name)
	}

	return Result{
		State: next,
		Plan:  plan,
		Picks: acc.picks,
	}
}

// Profiles returns the stat vectors of spirits in StatList order
func Profiles(spirits []entities.Spirit) [][]float64 {
	profiles := make([][]float64, len(spirits))
	for i, s := range spirits {
		profiles[i] = s.Stats.Vector()
	}
	return profiles
}

// TeamMAD is the MAD of the team's per-stat averages; NaN for no team
func TeamMAD(spirits []entities.Spirit) float64 {
	return stats.ProfileMAD(Profiles(spirits))
}

// accumulator is the scratch state of one Select call. It is never
// returned or retained.
type accumulator struct {
	pool     []entities.Spirit
	profiles [][]float64
	picks    []Pick
}

func newAccumulator(state partition.State[entities.Spirit], visible partition.Predicate[entities.Spirit]) *accumulator {
	eligible := state.Eligible(visible)
	pool := make([]entities.Spirit, len(eligible))
	for i, e := range eligible {
		pool[i] = e.Item
	}
	return &accumulator{
		pool:     pool,
		profiles: Profiles(state.ChosenItems()),
	}
}

func (a *accumulator) currentMAD() float64 {
	return stats.ProfileMAD(a.profiles)
}

func (a *accumulator) take(idx int, strategy Strategy) {
	spirit := a.pool[idx]
	a.pool = append(a.pool[:idx:idx], a.pool[idx+1:]...)
	a.profiles = append(a.profiles, spirit.Stats.Vector())
	a.picks = append(a.picks, Pick{
		Name:         spirit.Name,
		Strategy:     strategy,
		ProjectedMAD: a.currentMAD(),
	})
}

func (a *accumulator) fullPick(src random.Source) {
	a.fullPickAs(src, StrategyFull)
}

func (a *accumulator) fullPickAs(src random.Source, strategy Strategy) {
	if len(a.pool) == 0 {
		return
	}
	a.take(src.IntN(len(a.pool)), strategy)
}

// selectivePick explores freely while the team already meets the target
// and corrects course otherwise. An empty team never meets the target.
func (a *accumulator) selectivePick(params Params, src random.Source) {
	if params.Direction.Satisfies(a.currentMAD(), params.MADTarget) {
		a.fullPickAs(src, StrategySelective)
		return
	}
	a.carefulPickAs(params, src, StrategySelective)
}

func (a *accumulator) carefulPick(params Params, src random.Source) {
	a.carefulPickAs(params, src, StrategyCareful)
}

// carefulPickAs picks uniformly among candidates that would leave the team
// on the requested side of the target. Without any, it takes the candidate
// closest to that side: lowest projected MAD towards balance, highest
// towards imbalance, earliest in pool order on ties.
func (a *accumulator) carefulPickAs(params Params, src random.Source, strategy Strategy) {
	if len(a.pool) == 0 {
		return
	}

	projected := make([]float64, len(a.pool))
	var acceptable []int
	for i, s := range a.pool {
		projected[i] = stats.ProjectedMAD(a.profiles, s.Stats.Vector())
		if params.Direction.Satisfies(projected[i], params.MADTarget) {
			acceptable = append(acceptable, i)
		}
	}

	if idx, ok := random.Pick(src, acceptable); ok {
		a.take(idx, strategy)
		return
	}

	best := 0
	for i := 1; i < len(projected); i++ {
		if params.Direction == entities.TowardsImbalance {
			if projected[i] > projected[best] {
				best = i
			}
		} else if projected[i] < projected[best] {
			best = i
		}
	}
	a.take(best, strategy)
}
