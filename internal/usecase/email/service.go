package email

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

// Sender delivers composed email. Satisfied by email.SMTPSender.
type Sender interface {
	Configured() bool
	Send(to, cc []string, subject, body string) error
}

// Service handles email drafts composed from meetings and action items
type Service struct {
	drafts   repositories.EmailDraftRepository
	meetings repositories.MeetingRepository
	sender   Sender
	logger   *zap.Logger
}

// NewService creates an email service
func NewService(
	drafts repositories.EmailDraftRepository,
	meetings repositories.MeetingRepository,
	sender Sender,
	logger *zap.Logger,
) *Service {
	return &Service{
		drafts:   drafts,
		meetings: meetings,
		sender:   sender,
		logger:   logger,
	}
}

// CreateInput represents input for creating a draft
type CreateInput struct {
	MeetingID    uuid.UUID
	ActionItemID *uuid.UUID
	Subject      string
	Body         string
	Recipients   []string
	CC           []string
}

// Create composes a new unsent draft attached to a meeting the user owns
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*entities.EmailDraft, error) {
	meeting, err := s.meetings.FindByIDForUser(ctx, input.MeetingID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	if meeting == nil {
		return nil, entities.ErrMeetingNotFound
	}

	draft := entities.NewEmailDraft(input.MeetingID, input.Subject, input.Body, input.Recipients)
	draft.ActionItemID = input.ActionItemID
	draft.CC = datatypes.NewJSONSlice(input.CC)

	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return draft, nil
}

// ListByMeeting returns all drafts for a meeting the user owns
func (s *Service) ListByMeeting(ctx context.Context, meetingID, userID uuid.UUID) ([]entities.EmailDraft, error) {
	meeting, err := s.meetings.FindByIDForUser(ctx, meetingID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	if meeting == nil {
		return nil, entities.ErrMeetingNotFound
	}
	return s.drafts.ListByMeeting(ctx, meetingID)
}

// UpdateInput represents editable draft fields
type UpdateInput struct {
	Subject    *string
	Body       *string
	Recipients []string
	CC         []string
}

// Update edits an unsent draft. Sent drafts are immutable.
func (s *Service) Update(ctx context.Context, draftID uuid.UUID, input UpdateInput) (*entities.EmailDraft, error) {
	draft, err := s.find(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.SentAt != nil {
		return nil, entities.ErrDraftAlreadySent
	}

	if input.Subject != nil {
		draft.Subject = *input.Subject
	}
	if input.Body != nil {
		draft.Body = *input.Body
	}
	if input.Recipients != nil {
		draft.Recipients = datatypes.NewJSONSlice(input.Recipients)
	}
	if input.CC != nil {
		draft.CC = datatypes.NewJSONSlice(input.CC)
	}

	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	return draft, nil
}

// Send delivers a draft and stamps it as sent. A draft can only be sent once.
func (s *Service) Send(ctx context.Context, draftID uuid.UUID) (*entities.EmailDraft, error) {
	draft, err := s.find(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.SentAt != nil {
		return nil, entities.ErrDraftAlreadySent
	}
	if len(draft.Recipients) == 0 {
		return nil, apperrors.ErrInvalidArgument("draft has no recipients")
	}

	if err := s.sender.Send(draft.Recipients, draft.CC, draft.Subject, draft.Body); err != nil {
		return nil, apperrors.ErrSMTPFailed(err)
	}

	now := time.Now()
	if err := s.drafts.MarkSent(ctx, draftID, now); err != nil {
		return nil, fmt.Errorf("failed to stamp draft as sent: %w", err)
	}
	draft.SentAt = &now

	s.logger.Info("draft sent",
		zap.String("draft_id", draftID.String()),
		zap.Int("recipients", len(draft.Recipients)),
	)
	return draft, nil
}

// Delete removes an unsent draft
func (s *Service) Delete(ctx context.Context, draftID uuid.UUID) error {
	draft, err := s.find(ctx, draftID)
	if err != nil {
		return err
	}
	if draft.SentAt != nil {
		return entities.ErrDraftAlreadySent
	}
	return s.drafts.Delete(ctx, draftID)
}

func (s *Service) find(ctx context.Context, draftID uuid.UUID) (*entities.EmailDraft, error) {
	draft, err := s.drafts.FindByID(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to find draft: %w", err)
	}
	if draft == nil {
		return nil, entities.ErrDraftNotFound
	}
	return draft, nil
}
