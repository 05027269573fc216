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

type DeleteProfileUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	events      EventPublisher
	logger      logger.Logger
}

func NewDeleteProfileUseCase(pRepo profile.Repository, uRepo user.Repository, events EventPublisher, log logger.Logger) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		profileRepo: pRepo,
		userRepo:    uRepo,
		events:      events,
		logger:      log,
	}
}

type DeleteProfileInput struct {
	OwnerID uuid.UUID
}

// Execute removes the profile document and the owning identity record.
// Both deletes are idempotent, so calling this for an owner that is already
// gone succeeds.
func (uc *DeleteProfileUseCase) Execute(ctx context.Context, input DeleteProfileInput) error {

	if err := uc.profileRepo.Delete(ctx, input.OwnerID); err != nil {
		return err
	}

	if err := uc.userRepo.DeleteByID(ctx, input.OwnerID); err != nil {
		return err
	}

	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: event.ProfileEventTypeDeleted,
			OwnerID:   input.OwnerID,
		})
		if err != nil {
			uc.logger.Warn("publish profile deleted event failed", zap.Stringer("owner_id", input.OwnerID), zap.Error(err))
		}
	}()

	return nil
}
