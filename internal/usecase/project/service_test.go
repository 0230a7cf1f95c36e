package project

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

type fakeProjectRepo struct {
	projects map[uuid.UUID]*entities.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]*entities.Project)}
}

func (f *fakeProjectRepo) Create(ctx context.Context, p *entities.Project) error {
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Project, error) {
	p, ok := f.projects[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProjectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.Project, error) {
	var out []entities.Project
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p *entities.Project) error {
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.projects, id)
	return nil
}

func TestCreateAndList(t *testing.T) {
	svc := NewService(newFakeProjectRepo())
	userID := uuid.New()

	created, err := svc.Create(context.Background(), userID, CreateInput{Name: "Platform", Color: "#ff0000"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.UserID != userID || created.Name != "Platform" {
		t.Errorf("unexpected project %+v", created)
	}

	listed, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 project, got %d", len(listed))
	}

	other, err := svc.List(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("another user should see no projects, got %d", len(other))
	}
}

func TestUpdatePartialFields(t *testing.T) {
	svc := NewService(newFakeProjectRepo())
	userID := uuid.New()

	created, err := svc.Create(context.Background(), userID, CreateInput{Name: "Platform", Description: "infra work"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	name := "Platform v2"
	updated, err := svc.Update(context.Background(), created.ID, userID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Platform v2" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Description != "infra work" {
		t.Errorf("description should be untouched: %q", updated.Description)
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc := NewService(newFakeProjectRepo())
	userID := uuid.New()

	created, err := svc.Create(context.Background(), userID, CreateInput{Name: "Platform"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID, uuid.New()); !errors.Is(err, entities.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound for another user, got %v", err)
	}
}

func TestDeleteUnknownProject(t *testing.T) {
	svc := NewService(newFakeProjectRepo())
	if err := svc.Delete(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, entities.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}
