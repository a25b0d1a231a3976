// Package profile stores named save states of the spirit and invader views
package profile

import (
	"context"
	"sort"

	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/KirkDiggler/island-randomizer/internal/repositories/profile Repository

// SaveInput contains the profile to create or overwrite
type SaveInput struct {
	Profile *entities.Profile
}

// SaveOutput contains the stored profile
type SaveOutput struct {
	Profile *entities.Profile
}

// GetInput contains parameters for retrieving a profile
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a profile
type GetOutput struct {
	Profile *entities.Profile
}

// ListInput contains parameters for listing profiles
type ListInput struct{}

// ListOutput holds every stored profile, most recently updated first
type ListOutput struct {
	Profiles []*entities.Profile
}

// DeleteInput contains parameters for deleting a profile
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a profile
type DeleteOutput struct{}

// Repository defines the interface for profile storage operations
type Repository interface {
	// Save creates the profile or replaces the one with the same ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a profile by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns all profiles
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a profile; deleting a missing profile is NotFound
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errProfileNil     = "profile cannot be nil"
	errProfileIDEmpty = "profile ID cannot be empty"
)

func validateSave(input SaveInput) error {
	if input.Profile == nil {
		return errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.ID == "" {
		return errors.InvalidArgument(errProfileIDEmpty)
	}
	return nil
}

// sortProfiles orders by UpdatedAt descending, then by ID
func sortProfiles(profiles []*entities.Profile) {
	sort.Slice(profiles, func(i, j int) bool {
		a, b := profiles[i], profiles[j]
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID < b.ID
	})
}
