package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
	"github.com/johnquangdev/meeting-intelligence/pkg/jwt"
)

// Service handles authentication business logic
type Service struct {
	users      repositories.UserRepository
	jwtManager *jwt.Manager
}

// NewService creates an auth service
func NewService(users repositories.UserRepository, jwtManager *jwt.Manager) *Service {
	return &Service{
		users:      users,
		jwtManager: jwtManager,
	}
}

// RegisterInput represents input for registering a user
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// TokenPair is the authentication result returned to clients
type TokenPair struct {
	AccessToken string
	ExpiresIn   int64
	User        *entities.User
}

// Register creates a new user account and returns an access token
func (s *Service) Register(ctx context.Context, input RegisterInput) (*TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, entities.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(email, string(hash), input.FullName)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

// Login authenticates a user by email and password
func (s *Service) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, entities.ErrUserNotFound
	}

	return s.issueToken(user)
}

// GetUser loads the authenticated user's profile
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) issueToken(user *entities.User) (*TokenPair, error) {
	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &TokenPair{
		AccessToken: token,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
		User:        user,
	}, nil
}
