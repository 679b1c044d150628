package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/HenricoTaiete/trabalho-Scar/internal/auth"
	"github.com/HenricoTaiete/trabalho-Scar/internal/models"
	"github.com/HenricoTaiete/trabalho-Scar/internal/repository"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

type AuthService interface {
	Register(username, password string) (*models.User, error)
	Login(username, password string) (string, time.Time, error)
	Authenticate(token string) (*models.Claims, error)
	CurrentUser(token string) (*models.User, error)
}

type authService struct {
	repo   repository.UserRepository
	tokens *auth.TokenAuthority
	logger *zap.Logger
}

func NewAuthService(repo repository.UserRepository, tokens *auth.TokenAuthority, logger *zap.Logger) AuthService {
	return &authService{repo: repo, tokens: tokens, logger: logger}
}

func (s *authService) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	_, err := s.repo.GetUserByUsername(username)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to check existing user", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := s.repo.CreateUser(user); err != nil {
		// A concurrent registration can slip past the existence check; the
		// unique index reports it as a duplicate.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed token with its expiry.
// An unknown username and a wrong password are indistinguishable to the
// caller: both return ErrInvalidCredentials.
func (s *authService) Login(username, password string) (string, time.Time, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		s.logger.Error("Failed to get user by username", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	tokenString, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("username", user.Username))
	return tokenString, expiresAt, nil
}

// Authenticate decodes and validates a bearer token. The claims are trusted
// as-is; the user record is not refetched here.
func (s *authService) Authenticate(token string) (*models.Claims, error) {
	return s.tokens.Verify(token)
}

// CurrentUser validates the token and then refetches the user it refers to,
// so a deleted user cannot keep acting through an old token on this path.
func (s *authService) CurrentUser(token string) (*models.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Failed to get user by id", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}
