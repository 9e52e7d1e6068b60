package services

import (
	"context"
	"strings"

	"github.com/thryft-app/thryft/internal/auth"
	"github.com/thryft-app/thryft/internal/errors"
	"github.com/thryft-app/thryft/internal/logger"
	"github.com/thryft-app/thryft/internal/models"
	"github.com/thryft-app/thryft/internal/repository"
)

// AccountService handles sign-up and sign-in
type AccountService struct {
	log      logger.Logger
	repo     repository.UserRepository
	sessions *auth.Auth
}

// NewAccountService creates a new AccountService
func NewAccountService(log logger.Logger, repo repository.UserRepository, sessions *auth.Auth) *AccountService {
	return &AccountService{log: log, repo: repo, sessions: sessions}
}

// Register creates an account. Usernames are case-insensitive.
func (s *AccountService) Register(ctx context.Context, username, password, name string) (*models.User, error) {
	username = normalizeUsername(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < auth.MinPassword {
		return nil, ErrPasswordTooShort
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = username
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, errors.Internal(err)
	}

	u, err := s.repo.CreateUser(ctx, username, name, hash)
	if err == repository.ErrDuplicate {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// Login checks credentials and opens a session
func (s *AccountService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	u, err := s.repo.GetUserByUsername(ctx, normalizeUsername(username))
	if err == repository.ErrNotFound {
		return "", nil, ErrBadCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		s.log.Warn("Failed login", "username", u.Username)
		return "", nil, ErrBadCredentials
	}

	token := s.sessions.CreateSession(u.ID)
	s.log.Debug("User logged in", "user_id", u.ID)
	return token, u, nil
}

// Logout ends a session
func (s *AccountService) Logout(token string) {
	s.sessions.Logout(token)
}

// GetUser returns the account behind a session
func (s *AccountService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err == repository.ErrNotFound {
		return nil, errors.NotFound("user not found")
	}
	return u, err
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
