package entities

import "time"

// Direction tells the balance selector which side of the MAD target to aim for
type Direction string

// Direction constants
const (
	TowardsBalance   Direction = "balance"
	TowardsImbalance Direction = "imbalance"
)

// IsValid reports whether d is a known direction
func (d Direction) IsValid() bool {
	return d == TowardsBalance || d == TowardsImbalance
}

// Satisfies reports whether mad lies strictly on the requested side of
// target. NaN never satisfies either direction.
func (d Direction) Satisfies(mad, target float64) bool {
	switch d {
	case TowardsImbalance:
		return mad > target
	default:
		return mad < target
	}
}

// DifficultyRange is an inclusive total-difficulty band with Min <= Max
type DifficultyRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NewDifficultyRange builds a range from two bounds in any order
func NewDifficultyRange(a, b float64) DifficultyRange {
	if a > b {
		a, b = b, a
	}
	return DifficultyRange{Min: a, Max: b}
}

// Normalized returns the range with its bounds ordered
func (r DifficultyRange) Normalized() DifficultyRange {
	return NewDifficultyRange(r.Min, r.Max)
}

// Shift returns the range moved down by already, the difficulty that is
// already committed
func (r DifficultyRange) Shift(already float64) DifficultyRange {
	return DifficultyRange{Min: r.Min - already, Max: r.Max - already}
}

// Default settings for a fresh view
const (
	DefaultTeamSize         = 2
	DefaultMADTarget        = 3.0
	DefaultDifficultyMin    = 0.0
	DefaultDifficultyMax    = 15.0
	DefaultBalanceDirection = TowardsBalance
)

// TeamSaveState is the reduced, persistable form of the spirit view. A nil
// field means "not saved" and falls back to the default on load.
type TeamSaveState struct {
	Filter    *SpiritFilter `json:"filter,omitempty"`
	TeamSize  *int          `json:"team_size,omitempty"`
	MADTarget *float64      `json:"mad_target,omitempty"`
	Direction *Direction    `json:"direction,omitempty"`
	Disabled  []string      `json:"disabled,omitempty"`
}

// RulesSaveState is the reduced, persistable form of the invader view
type RulesSaveState struct {
	Filter   *RuleFilter      `json:"filter,omitempty"`
	Range    *DifficultyRange `json:"range,omitempty"`
	Disabled []string         `json:"disabled,omitempty"`
}

// Profile is a named pair of save states
type Profile struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Team      *TeamSaveState  `json:"team,omitempty"`
	Rules     *RulesSaveState `json:"rules,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Clone returns a deep copy
func (s TeamSaveState) Clone() TeamSaveState {
	out := TeamSaveState{
		Filter:    clonePtr(s.Filter, SpiritFilter.Clone),
		TeamSize:  clonePtr(s.TeamSize, nil),
		MADTarget: clonePtr(s.MADTarget, nil),
		Direction: clonePtr(s.Direction, nil),
	}
	if s.Disabled != nil {
		out.Disabled = append([]string{}, s.Disabled...)
	}
	return out
}

// Clone returns a deep copy
func (s RulesSaveState) Clone() RulesSaveState {
	out := RulesSaveState{
		Filter: clonePtr(s.Filter, RuleFilter.Clone),
		Range:  clonePtr(s.Range, nil),
	}
	if s.Disabled != nil {
		out.Disabled = append([]string{}, s.Disabled...)
	}
	return out
}

func clonePtr[T any](p *T, deep func(T) T) *T {
	if p == nil {
		return nil
	}
	v := *p
	if deep != nil {
		v = deep(v)
	}
	return &v
}
