package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// ProjectRepository defines project persistence operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}
