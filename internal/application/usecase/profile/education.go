package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gan0622/DevForFun/adapters/event"
	"github.com/gan0622/DevForFun/internal/domain/profile"
	"github.com/gan0622/DevForFun/pkg/apperror"
	"github.com/gan0622/DevForFun/pkg/logger"
)

// EducationInput carries a new schooling entry. School, Degree, FieldOfStudy
// and From are enforced at the transport boundary.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

type AddEducationUseCase struct {
	profileRepo profile.Repository
	events      EventPublisher
	logger      logger.Logger
}

func NewAddEducationUseCase(repo profile.Repository, events EventPublisher, log logger.Logger) *AddEducationUseCase {
	return &AddEducationUseCase{profileRepo: repo, events: events, logger: log}
}

type AddEducationInput struct {
	OwnerID uuid.UUID
	Entry   EducationInput
}

type AddEducationOutput struct {
	Profile *profile.Profile
}

func (uc *AddEducationUseCase) Execute(ctx context.Context, input AddEducationInput) (*AddEducationOutput, error) {
	current, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	entry := profile.Education{
		ID:           uuid.New(),
		School:       input.Entry.School,
		Degree:       input.Entry.Degree,
		FieldOfStudy: input.Entry.FieldOfStudy,
		From:         input.Entry.From,
		To:           input.Entry.To,
		Current:      input.Entry.Current,
		Description:  input.Entry.Description,
	}

	entries := profile.Prepend(current.Education, entry)

	p, err := uc.profileRepo.SaveEducation(ctx, input.OwnerID, entries)
	if err != nil {
		return nil, err
	}

	uc.publishChange(input.OwnerID)
	return &AddEducationOutput{Profile: p}, nil
}

func (uc *AddEducationUseCase) publishChange(ownerID uuid.UUID) {
	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: event.ProfileEventTypeEducationChange,
			OwnerID:   ownerID,
		})
		if err != nil {
			uc.logger.Warn("publish education change event failed", zap.Stringer("owner_id", ownerID), zap.Error(err))
		}
	}()
}

type RemoveEducationUseCase struct {
	profileRepo profile.Repository
	events      EventPublisher
	logger      logger.Logger
}

func NewRemoveEducationUseCase(repo profile.Repository, events EventPublisher, log logger.Logger) *RemoveEducationUseCase {
	return &RemoveEducationUseCase{profileRepo: repo, events: events, logger: log}
}

type RemoveEducationInput struct {
	OwnerID uuid.UUID
	EntryID uuid.UUID
}

type RemoveEducationOutput struct {
	Profile *profile.Profile
}

func (uc *RemoveEducationUseCase) Execute(ctx context.Context, input RemoveEducationInput) (*RemoveEducationOutput, error) {
	current, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	entries, found := profile.RemoveByID(current.Education, input.EntryID)
	if !found {
		return nil, apperror.NewNotFound("education entry", input.EntryID.String())
	}

	p, err := uc.profileRepo.SaveEducation(ctx, input.OwnerID, entries)
	if err != nil {
		return nil, err
	}

	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: event.ProfileEventTypeEducationChange,
			OwnerID:   input.OwnerID,
		})
		if err != nil {
			uc.logger.Warn("publish education change event failed", zap.Stringer("owner_id", input.OwnerID), zap.Error(err))
		}
	}()

	return &RemoveEducationOutput{Profile: p}, nil
}
