package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/gan0622/DevForFun/internal/domain/profile"
)

// GetProfileUseCase serves both the authenticated "my profile" read and the
// public by-owner lookup; the two differ only in where the owner id comes
// from.
type GetProfileUseCase struct {
	profileRepo profile.Repository
}

func NewGetProfileUseCase(repo profile.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: repo}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}
