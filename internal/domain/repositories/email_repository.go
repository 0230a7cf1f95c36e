package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// EmailDraftRepository defines email draft persistence operations
type EmailDraftRepository interface {
	Create(ctx context.Context, draft *entities.EmailDraft) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.EmailDraft, error)
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]entities.EmailDraft, error)
	Update(ctx context.Context, draft *entities.EmailDraft) error
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
