package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

// Service handles project business logic
type Service struct {
	projects repositories.ProjectRepository
}

// NewService creates a project service
func NewService(projects repositories.ProjectRepository) *Service {
	return &Service{projects: projects}
}

// CreateInput represents input for creating a project
type CreateInput struct {
	Name        string
	Description string
	Color       string
}

// Create creates a new project owned by the user
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*entities.Project, error) {
	project := entities.NewProject(userID, input.Name)
	project.Description = input.Description
	project.Color = input.Color

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// List returns all projects owned by the user
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]entities.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

// Get returns a single project owned by the user
func (s *Service) Get(ctx context.Context, projectID, userID uuid.UUID) (*entities.Project, error) {
	project, err := s.projects.FindByIDForUser(ctx, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return nil, entities.ErrProjectNotFound
	}
	return project, nil
}

// UpdateInput represents project fields that can change
type UpdateInput struct {
	Name        *string
	Description *string
	Color       *string
}

// Update applies partial changes to a project
func (s *Service) Update(ctx context.Context, projectID, userID uuid.UUID, input UpdateInput) (*entities.Project, error) {
	project, err := s.Get(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Color != nil {
		project.Color = *input.Color
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete removes a project owned by the user
func (s *Service) Delete(ctx context.Context, projectID, userID uuid.UUID) error {
	if _, err := s.Get(ctx, projectID, userID); err != nil {
		return err
	}
	return s.projects.Delete(ctx, projectID)
}
