package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// MeetingRepository defines meeting persistence operations
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.Meeting, error)
	Update(ctx context.Context, meeting *entities.Meeting) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MeetingStatus) error
	UpdateAudio(ctx context.Context, id uuid.UUID, filePath, fileURL string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
