package entities

import "slices"

// MaxStat is the highest value any spirit stat can take
const MaxStat = 20.0

// majorStatTolerance absorbs float noise when comparing against MaxStat/2
const majorStatTolerance = 1e-9

// Stat names one of the five spirit stat axes
type Stat string

// Stat constants
const (
	StatOffense Stat = "offense"
	StatControl Stat = "control"
	StatFear    Stat = "fear"
	StatDefense Stat = "defense"
	StatUtility Stat = "utility"
)

// StatList lists the stat axes in display order
var StatList = []Stat{
	StatOffense,
	StatControl,
	StatFear,
	StatDefense,
	StatUtility,
}

// IsValid reports whether s is a known stat axis
func (s Stat) IsValid() bool {
	return slices.Contains(StatList, s)
}

// Complexity is the difficulty tier of playing a spirit
type Complexity string

// Complexity constants
const (
	ComplexityLow      Complexity = "Low"
	ComplexityMedium   Complexity = "Medium"
	ComplexityHigh     Complexity = "High"
	ComplexityVeryHigh Complexity = "Very High"
)

// Complexities lists the complexity tiers in display order
var Complexities = []Complexity{
	ComplexityLow,
	ComplexityMedium,
	ComplexityHigh,
	ComplexityVeryHigh,
}

// IsValid reports whether c is a known complexity tier
func (c Complexity) IsValid() bool {
	return slices.Contains(Complexities, c)
}

// Stats holds the five fixed stat values of a spirit
type Stats struct {
	Offense float64 `json:"offense" yaml:"offense"`
	Control float64 `json:"control" yaml:"control"`
	Fear    float64 `json:"fear" yaml:"fear"`
	Defense float64 `json:"defense" yaml:"defense"`
	Utility float64 `json:"utility" yaml:"utility"`
}

// Get returns the value of one stat axis. Unknown axes yield 0.
func (s Stats) Get(stat Stat) float64 {
	switch stat {
	case StatOffense:
		return s.Offense
	case StatControl:
		return s.Control
	case StatFear:
		return s.Fear
	case StatDefense:
		return s.Defense
	case StatUtility:
		return s.Utility
	default:
		return 0
	}
}

// Vector returns the stat values ordered as StatList
func (s Stats) Vector() []float64 {
	out := make([]float64, len(StatList))
	for i, stat := range StatList {
		out[i] = s.Get(stat)
	}
	return out
}

// MajorStats returns the axes whose value reaches at least half of MaxStat
func (s Stats) MajorStats() []Stat {
	var major []Stat
	for _, stat := range StatList {
		if s.Get(stat) >= MaxStat/2-majorStatTolerance {
			major = append(major, stat)
		}
	}
	return major
}

// Spirit is one immutable spirit entry of the catalog
type Spirit struct {
	Name       string     `json:"name" yaml:"name"`
	Image      string     `json:"image,omitempty" yaml:"image,omitempty"`
	Complexity Complexity `json:"complexity" yaml:"complexity"`
	Expansion  Expansion  `json:"expansion" yaml:"expansion"`
	Stats      Stats      `json:"stats" yaml:"stats"`
}

// GetName returns the identity key of the spirit
func (s Spirit) GetName() string {
	return s.Name
}
