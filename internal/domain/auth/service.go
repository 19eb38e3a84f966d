package auth

import (
	"context"
	"fmt"
	"time"

	"pharmapos/internal/core/apperror"
	"pharmapos/pkg/logger"
)

// Service provides login and user management.
type Service struct {
	repo Repository
	jwt  *JWTService
}

// NewService creates a new auth service.
func NewService(repo Repository, jwtService *JWTService) *Service {
	return &Service{
		repo: repo,
		jwt:  jwtService,
	}
}

// Login checks the credentials and issues a session token. The comparison is
// plaintext against the stored password (carried-forward limitation, see the
// package doc). Failures never reveal whether the username exists.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, apperror.NewInvalidCredentials()
	}

	user, err := s.repo.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil || user.Password != creds.Password {
		return nil, apperror.NewInvalidCredentials()
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	logger.Info(ctx, "operator logged in", "username", user.Username)

	return &Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Username:    user.Username,
	}, nil
}

// AddUser creates an operator account. Both fields are required; an existing
// username is rejected with DUPLICATE_USERNAME.
func (s *Service) AddUser(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return apperror.NewValidation("username and password are required")
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return apperror.NewDuplicateUsername(username)
	}

	user := &User{
		Username:  username,
		Password:  password,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	logger.Info(ctx, "operator added", "username", username)
	return nil
}

// DeleteUser removes an operator account. The seeded default account is
// protected.
func (s *Service) DeleteUser(ctx context.Context, username string) error {
	if username == DefaultAdminUsername {
		return apperror.NewValidation("default operator account cannot be deleted")
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return apperror.NewNotFound("user", username)
	}

	if err := s.repo.Delete(ctx, username); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	logger.Info(ctx, "operator deleted", "username", username)
	return nil
}

// ListUsers returns all operator accounts.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
