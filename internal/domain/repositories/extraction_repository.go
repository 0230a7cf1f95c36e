package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// ExtractionRepository defines persistence for the four extraction categories.
// All inserts are append-only; the pipeline never mutates items after creation.
type ExtractionRepository interface {
	InsertDecisions(ctx context.Context, decisions []*entities.Decision) error
	InsertActionItems(ctx context.Context, items []*entities.ActionItem) error
	InsertFollowUps(ctx context.Context, followUps []*entities.FollowUp) error
	InsertProblemStatements(ctx context.Context, problems []*entities.ProblemStatement) error

	ListDecisions(ctx context.Context, meetingID uuid.UUID) ([]entities.Decision, error)
	ListActionItems(ctx context.Context, meetingID uuid.UUID) ([]entities.ActionItem, error)
	ListFollowUps(ctx context.Context, meetingID uuid.UUID) ([]entities.FollowUp, error)
	ListProblemStatements(ctx context.Context, meetingID uuid.UUID) ([]entities.ProblemStatement, error)

	// Action item workflow updates are CRUD-owned, not pipeline-owned
	FindActionItem(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)
	UpdateActionItem(ctx context.Context, item *entities.ActionItem) error
	UpdateActionItemStatus(ctx context.Context, id uuid.UUID, status entities.ActionStatus) error
}
