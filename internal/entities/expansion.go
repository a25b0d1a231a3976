// Package entities provides the catalog and save-state types shared by the
// randomizer modules.
package entities

import "slices"

// Expansion identifies the box a catalog entry ships in
type Expansion string

// Expansion constants
const (
	ExpansionBase            Expansion = "Base"
	ExpansionBranchAndClaw   Expansion = "B & C"
	ExpansionFeatherAndFlame Expansion = "F & F"
	ExpansionJaggedEarth     Expansion = "JE"
	ExpansionHorizons        Expansion = "Horizons"
)

// Expansions lists every expansion in display order
var Expansions = []Expansion{
	ExpansionBase,
	ExpansionBranchAndClaw,
	ExpansionFeatherAndFlame,
	ExpansionJaggedEarth,
	ExpansionHorizons,
}

// IsValid reports whether e is a known expansion
func (e Expansion) IsValid() bool {
	return slices.Contains(Expansions, e)
}

// toggle returns a copy of list with v removed if present, appended otherwise
func toggle[T comparable](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	found := false
	for _, item := range list {
		if item == v {
			found = true
			continue
		}
		out = append(out, item)
	}
	if !found {
		out = append(out, v)
	}
	return out
}
