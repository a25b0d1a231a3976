package rules

import (
	"github.com/KirkDiggler/island-randomizer/internal/engine/matching"
	"github.com/KirkDiggler/island-randomizer/internal/entities"
)

// RandomizeInput defines the request for picking a scenario and adversary
type RandomizeInput struct {
	State State
}

// RandomizeOutput defines the response for picking a scenario and adversary
type RandomizeOutput struct {
	State State
	// Scenario and Adversary are nil when that side got no pick
	Scenario  *matching.Pick
	Adversary *matching.Pick
	Score     float64
}

// SaveProfileInput defines the request for saving the view settings.
// An empty ProfileID creates a new profile.
type SaveProfileInput struct {
	ProfileID string
	Name      string
	State     State
}

// SaveProfileOutput defines the response for saving the view settings
type SaveProfileOutput struct {
	Profile *entities.Profile
}

// LoadProfileInput defines the request for restoring the view settings
type LoadProfileInput struct {
	ProfileID string
}

// LoadProfileOutput defines the response for restoring the view settings
type LoadProfileOutput struct {
	State   State
	Profile *entities.Profile
}
