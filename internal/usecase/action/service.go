package action

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

// Service handles the action item approval workflow. Items are created by the
// extraction pipeline in pending state; everything after that lives here.
type Service struct {
	extractions repositories.ExtractionRepository
	meetings    repositories.MeetingRepository
}

// NewService creates an action service
func NewService(extractions repositories.ExtractionRepository, meetings repositories.MeetingRepository) *Service {
	return &Service{
		extractions: extractions,
		meetings:    meetings,
	}
}

// ListByMeeting returns the action items extracted for a meeting the user owns
func (s *Service) ListByMeeting(ctx context.Context, meetingID, userID uuid.UUID) ([]entities.ActionItem, error) {
	meeting, err := s.meetings.FindByIDForUser(ctx, meetingID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	if meeting == nil {
		return nil, entities.ErrMeetingNotFound
	}
	return s.extractions.ListActionItems(ctx, meetingID)
}

// UpdateInput represents edits a user can make before approving an item
type UpdateInput struct {
	Description *string
	AssignedTo  *string
	DueDate     *time.Time
	ActionType  *entities.ActionType
}

// Update edits an action item's content
func (s *Service) Update(ctx context.Context, actionID uuid.UUID, input UpdateInput) (*entities.ActionItem, error) {
	item, err := s.find(ctx, actionID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.AssignedTo != nil {
		item.AssignedTo = input.AssignedTo
	}
	if input.DueDate != nil {
		item.DueDate = input.DueDate
	}
	if input.ActionType != nil {
		item.ActionType = *input.ActionType
	}

	if err := s.extractions.UpdateActionItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

// Approve moves a pending action item to approved. Only pending items can be
// approved; the workflow never moves backwards.
func (s *Service) Approve(ctx context.Context, actionID uuid.UUID) (*entities.ActionItem, error) {
	item, err := s.find(ctx, actionID)
	if err != nil {
		return nil, err
	}
	if item.Status != entities.ActionStatusPending {
		return nil, apperrors.ErrInvalidArgument(fmt.Sprintf("action is %s, only pending actions can be approved", item.Status))
	}
	return s.transition(ctx, item, entities.ActionStatusApproved)
}

// Reject marks an action item as rejected
func (s *Service) Reject(ctx context.Context, actionID uuid.UUID) (*entities.ActionItem, error) {
	item, err := s.find(ctx, actionID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, item, entities.ActionStatusRejected)
}

// Complete marks an action item as completed
func (s *Service) Complete(ctx context.Context, actionID uuid.UUID) (*entities.ActionItem, error) {
	item, err := s.find(ctx, actionID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, item, entities.ActionStatusCompleted)
}

func (s *Service) find(ctx context.Context, actionID uuid.UUID) (*entities.ActionItem, error) {
	item, err := s.extractions.FindActionItem(ctx, actionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find action item: %w", err)
	}
	if item == nil {
		return nil, entities.ErrActionNotFound
	}
	return item, nil
}

func (s *Service) transition(ctx context.Context, item *entities.ActionItem, status entities.ActionStatus) (*entities.ActionItem, error) {
	if err := s.extractions.UpdateActionItemStatus(ctx, item.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update action status: %w", err)
	}
	item.Status = status
	return item, nil
}
