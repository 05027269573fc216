package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gan0622/DevForFun/adapters/event"
	"github.com/gan0622/DevForFun/internal/domain/profile"
	"github.com/gan0622/DevForFun/internal/domain/user"
	"github.com/gan0622/DevForFun/pkg/logger"
)

type UpsertProfileUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	events      EventPublisher
	logger      logger.Logger
}

func NewUpsertProfileUseCase(pRepo profile.Repository, uRepo user.Repository, events EventPublisher, log logger.Logger) *UpsertProfileUseCase {
	return &UpsertProfileUseCase{
		profileRepo: pRepo,
		userRepo:    uRepo,
		events:      events,
		logger:      log,
	}
}

type UpsertProfileInput struct {
	OwnerID uuid.UUID
	Profile profile.Input
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
}

// Execute applies the set-if-present patch to the owner's profile, creating
// the document on first use. The repository upsert is a single atomic
// statement per owner.
func (uc *UpsertProfileUseCase) Execute(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {

	// The owner identity must exist before a profile can hang off it.
	if _, err := uc.userRepo.FindByID(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	patch := profile.BuildPatch(input.Profile)

	p, err := uc.profileRepo.Upsert(ctx, input.OwnerID, patch)
	if err != nil {
		return nil, err
	}

	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: event.ProfileEventTypeUpdated,
			OwnerID:   input.OwnerID,
		})
		if err != nil {
			uc.logger.Warn("publish profile updated event failed", zap.Stringer("owner_id", input.OwnerID), zap.Error(err))
		}
	}()

	return &UpsertProfileOutput{Profile: p}, nil
}
