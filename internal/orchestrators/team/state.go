package team

import (
	"github.com/KirkDiggler/island-randomizer/internal/catalog"
	"github.com/KirkDiggler/island-randomizer/internal/engine/balance"
	"github.com/KirkDiggler/island-randomizer/internal/engine/partition"
	"github.com/KirkDiggler/island-randomizer/internal/engine/stats"
	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/pkg/random"
)

// State is one immutable snapshot of the spirit view. Every method returns
// a new State and leaves the receiver untouched.
type State struct {
	Spirits   partition.State[entities.Spirit]
	Filter    entities.SpiritFilter
	TeamSize  int
	MADTarget float64
	Direction entities.Direction
}

// StatAverage is the team average of one stat
type StatAverage struct {
	Stat  entities.Stat
	Value float64
}

// NewState puts every catalog spirit into the available partition with the
// default filter and sliders
func NewState(cat *catalog.Catalog) State {
	return State{
		Spirits:   partition.New(cat.Spirits),
		Filter:    entities.DefaultSpiritFilter(),
		TeamSize:  entities.DefaultTeamSize,
		MADTarget: entities.DefaultMADTarget,
		Direction: entities.DefaultBalanceDirection,
	}
}

// Choose moves a spirit into the team
func (s State) Choose(name string) State {
	s.Spirits = s.Spirits.Choose(name)
	return s
}

// Unchoose moves a spirit back to the available partition
func (s State) Unchoose(name string) State {
	s.Spirits = s.Spirits.Unchoose(name)
	return s
}

// SetDisabled excludes or re-includes a spirit from randomization
func (s State) SetDisabled(name string, disabled bool) State {
	s.Spirits = s.Spirits.SetDisabled(name, disabled)
	return s
}

// ToggleDisabled flips the disabled flag of a spirit
func (s State) ToggleDisabled(name string) State {
	if e, ok := s.find(name); ok {
		return s.SetDisabled(name, !e.Disabled)
	}
	return s
}

// TrashTeam empties the team
func (s State) TrashTeam() State {
	s.Spirits = s.Spirits.Trash()
	return s
}

// ToggleComplexity flips whether a complexity tier is shown
func (s State) ToggleComplexity(c entities.Complexity) State {
	s.Filter = s.Filter.ToggleComplexity(c)
	return s
}

// ToggleExpansion flips whether an expansion is shown
func (s State) ToggleExpansion(e entities.Expansion) State {
	s.Filter = s.Filter.ToggleExpansion(e)
	return s
}

// ToggleStat flips whether a prominent stat is shown
func (s State) ToggleStat(stat entities.Stat) State {
	s.Filter = s.Filter.ToggleStat(stat)
	return s
}

// SetTeamSize sets the target team size; negative sizes clamp to zero
func (s State) SetTeamSize(size int) State {
	s.TeamSize = max(0, size)
	return s
}

// SetMADTarget sets the MAD threshold
func (s State) SetMADTarget(target float64) State {
	s.MADTarget = target
	return s
}

// SetDirection sets which side of the MAD target to aim for. Unknown
// directions leave the state unchanged.
func (s State) SetDirection(d entities.Direction) State {
	if d.IsValid() {
		s.Direction = d
	}
	return s
}

// Visible returns the available spirits shown by the filter
func (s State) Visible() []partition.Entry[entities.Spirit] {
	return s.Spirits.Visible(s.Filter.Matches)
}

// Chosen returns the spirits in the team
func (s State) Chosen() []entities.Spirit {
	return s.Spirits.ChosenItems()
}

// StatAverages returns the team average of each stat in StatList order.
// Values are NaN for an empty team.
func (s State) StatAverages() []StatAverage {
	chosen := s.Chosen()
	out := make([]StatAverage, len(entities.StatList))
	for i, stat := range entities.StatList {
		out[i] = StatAverage{
			Stat:  stat,
			Value: stats.AttributeAverage(chosen, func(sp entities.Spirit) float64 { return sp.Stats.Get(stat) }),
		}
	}
	return out
}

// MAD returns the mean absolute deviation of the team's stat averages; NaN
// for an empty team
func (s State) MAD() float64 {
	return balance.TeamMAD(s.Chosen())
}

// Randomize fills the team up to TeamSize from the visible, enabled spirits
func (s State) Randomize(src random.Source) (State, balance.Result) {
	result := balance.Select(s.Spirits, s.Filter.Matches, balance.Params{
		TargetCount: s.TeamSize,
		MADTarget:   s.MADTarget,
		Direction:   s.Direction,
	}, src)
	s.Spirits = result.State
	return s, result
}

func (s State) find(name string) (partition.Entry[entities.Spirit], bool) {
	if e, ok := s.Spirits.FindAvailable(name); ok {
		return e, true
	}
	return s.Spirits.FindChosen(name)
}

// ToSaveState reduces the state to filters, sliders and disabled names
func ToSaveState(s State) entities.TeamSaveState {
	filter := s.Filter.Clone()
	teamSize := s.TeamSize
	madTarget := s.MADTarget
	direction := s.Direction
	return entities.TeamSaveState{
		Filter:    &filter,
		TeamSize:  &teamSize,
		MADTarget: &madTarget,
		Direction: &direction,
		Disabled:  s.Spirits.DisabledNames(),
	}
}

// FromSaveState rebuilds a state from the catalog and a save state. The team
// always starts empty. Missing fields fall back to the defaults and
// disabled names absent from the catalog are ignored.
func FromSaveState(cat *catalog.Catalog, save *entities.TeamSaveState) State {
	s := NewState(cat)
	if save == nil {
		return s
	}
	if save.Filter != nil {
		s.Filter = save.Filter.WithDefaults()
	}
	if save.TeamSize != nil {
		s = s.SetTeamSize(*save.TeamSize)
	}
	if save.MADTarget != nil {
		s.MADTarget = *save.MADTarget
	}
	if save.Direction != nil {
		s = s.SetDirection(*save.Direction)
	}
	for _, name := range save.Disabled {
		s = s.SetDisabled(name, true)
	}
	return s
}
