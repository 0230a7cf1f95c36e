package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// TranscriptRepository defines transcript persistence operations
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entities.Transcript) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error)
	// FindLatestByMeetingID returns the newest transcript for a meeting, or nil.
	// Re-processing appends rows, so "latest" is the one callers care about.
	FindLatestByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, raw, cleaned string) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
}
