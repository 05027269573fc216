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

// ExperienceInput carries a new work-history entry. Title, Company and From
// are enforced at the transport boundary.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type AddExperienceUseCase struct {
	profileRepo profile.Repository
	events      EventPublisher
	logger      logger.Logger
}

func NewAddExperienceUseCase(repo profile.Repository, events EventPublisher, log logger.Logger) *AddExperienceUseCase {
	return &AddExperienceUseCase{profileRepo: repo, events: events, logger: log}
}

type AddExperienceInput struct {
	OwnerID uuid.UUID
	Entry   ExperienceInput
}

type AddExperienceOutput struct {
	Profile *profile.Profile
}

// Execute assigns a fresh id, prepends the entry so the collection stays
// newest-first, and persists. An owner without a profile gets a NotFound.
func (uc *AddExperienceUseCase) Execute(ctx context.Context, input AddExperienceInput) (*AddExperienceOutput, error) {
	current, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	entry := profile.Experience{
		ID:          uuid.New(),
		Title:       input.Entry.Title,
		Company:     input.Entry.Company,
		Location:    input.Entry.Location,
		From:        input.Entry.From,
		To:          input.Entry.To,
		Current:     input.Entry.Current,
		Description: input.Entry.Description,
	}

	entries := profile.Prepend(current.Experience, entry)

	p, err := uc.profileRepo.SaveExperience(ctx, input.OwnerID, entries)
	if err != nil {
		return nil, err
	}

	uc.publishChange(input.OwnerID)
	return &AddExperienceOutput{Profile: p}, nil
}

func (uc *AddExperienceUseCase) publishChange(ownerID uuid.UUID) {
	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: event.ProfileEventTypeExperienceChange,
			OwnerID:   ownerID,
		})
		if err != nil {
			uc.logger.Warn("publish experience change event failed", zap.Stringer("owner_id", ownerID), zap.Error(err))
		}
	}()
}

type RemoveExperienceUseCase struct {
	profileRepo profile.Repository
	events      EventPublisher
	logger      logger.Logger
}

func NewRemoveExperienceUseCase(repo profile.Repository, events EventPublisher, log logger.Logger) *RemoveExperienceUseCase {
	return &RemoveExperienceUseCase{profileRepo: repo, events: events, logger: log}
}

type RemoveExperienceInput struct {
	OwnerID uuid.UUID
	EntryID uuid.UUID
}

type RemoveExperienceOutput struct {
	Profile *profile.Profile
}

func (uc *RemoveExperienceUseCase) Execute(ctx context.Context, input RemoveExperienceInput) (*RemoveExperienceOutput, error) {
	current, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	entries, found := profile.RemoveByID(current.Experience, input.EntryID)
	if !found {
		return nil, apperror.NewNotFound("experience entry", input.EntryID.String())
	}

	p, err := uc.profileRepo.SaveExperience(ctx, input.OwnerID, entries)
	if err != nil {
		return nil, err
	}

	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: event.ProfileEventTypeExperienceChange,
			OwnerID:   input.OwnerID,
		})
		if err != nil {
			uc.logger.Warn("publish experience change event failed", zap.Stringer("owner_id", input.OwnerID), zap.Error(err))
		}
	}()

	return &RemoveExperienceOutput{Profile: p}, nil
}
