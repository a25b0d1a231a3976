// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/repositories/profile"
	profilemock "github.com/KirkDiggler/island-randomizer/internal/repositories/profile/mock"
)

// ExpectProfileGet sets up a mock expectation for getting a profile from the repository
func ExpectProfileGet(
	ctx context.Context, mockRepo *profilemock.MockRepository,
	profileID string, p *entities.Profile, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, profile.GetInput{ID: profileID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, profile.GetInput{ID: profileID}).
		Return(&profile.GetOutput{Profile: p}, nil)
}

// ExpectProfileSave sets up a mock expectation for saving a profile. The
// repository echoes the profile back, as the real ones do. The saved profile
// is captured into saved when it is not nil.
func ExpectProfileSave(ctx context.Context, mockRepo *profilemock.MockRepository, saved **entities.Profile) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input profile.SaveInput) (*profile.SaveOutput, error) {
			if saved != nil {
				*saved = input.Profile
			}
			return &profile.SaveOutput{Profile: input.Profile}, nil
		})
}

// ExpectProfileSaveError sets up a failing save
func ExpectProfileSaveError(ctx context.Context, mockRepo *profilemock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		Return(nil, err)
}
