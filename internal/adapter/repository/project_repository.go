package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// ProjectRepository handles project data operations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	if project == nil {
		return errors.New("project cannot be nil")
	}
	return r.db.WithContext(ctx).Create(project).Error
}

// FindByIDForUser retrieves a project by ID scoped to its owner
func (r *ProjectRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Project, error) {
	var project entities.Project
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// ListByUser retrieves all projects owned by a user, newest first
func (r *ProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.Project, error) {
	var projects []entities.Project
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	if project == nil {
		return errors.New("project cannot be nil")
	}
	project.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Project{}).Error
}
