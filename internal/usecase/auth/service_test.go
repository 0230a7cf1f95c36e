package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entities.User
	byID    map[uuid.UUID]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entities.User),
		byID:    make(map[uuid.UUID]*entities.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entities.User) error {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	return f.byEmail[email], nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewService(repo, jwt.NewManager("test-secret", time.Hour)), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()

	pair, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Alice@Example.com",
		Password: "correct horse battery",
		FullName: "Alice",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if pair.AccessToken == "" {
		t.Error("expected an access token")
	}
	if pair.User.Email != "alice@example.com" {
		t.Errorf("email should be normalized, got %q", pair.User.Email)
	}
	if pair.User.PasswordHash == "correct horse battery" {
		t.Error("password must not be stored in plain text")
	}

	// Login with the original casing should still work
	logged, err := svc.Login(context.Background(), "ALICE@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if logged.User.ID != pair.User.ID {
		t.Error("login should return the registered user")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	input := RegisterInput{Email: "bob@example.com", Password: "pw12345678"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, entities.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "bob@example.com", Password: "pw12345678"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "bob@example.com", "wrong"); !errors.Is(err, entities.ErrUserNotFound) {
		t.Fatalf("wrong password should not authenticate, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "pw12345678"); !errors.Is(err, entities.ErrUserNotFound) {
		t.Fatalf("unknown email should not authenticate, got %v", err)
	}
}
