package profile

import (
	"context"
	"sync"

	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Stored
// profiles are copied on the way in and out.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Profile
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Profile),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the profile
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Profile.ID] = cloneProfile(input.Profile)

	return &SaveOutput{Profile: input.Profile}, nil
}

// Get retrieves a profile by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("profile %s not found", input.ID).WithMeta("profile_id", input.ID)
	}

	return &GetOutput{Profile: cloneProfile(p)}, nil
}

// List returns copies of all profiles
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*entities.Profile, 0, len(r.store))
	for _, p := range r.store {
		profiles = append(profiles, cloneProfile(p))
	}
	sortProfiles(profiles)

	return &ListOutput{Profiles: profiles}, nil
}

// Delete removes a profile
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("profile %s not found", input.ID).WithMeta("profile_id", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

func cloneProfile(p *entities.Profile) *entities.Profile {
	out := *p
	if p.Team != nil {
		team := p.Team.Clone()
		out.Team = &team
	}
	if p.Rules != nil {
		rules := p.Rules.Clone()
		out.Rules = &rules
	}
	return &out
}
