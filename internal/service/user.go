package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/HenricoTaiete/trabalho-Scar/internal/auth"
	"github.com/HenricoTaiete/trabalho-Scar/internal/models"
	"github.com/HenricoTaiete/trabalho-Scar/internal/repository"
)

// UserUpdate carries the optional fields of an update; empty means unchanged.
type UserUpdate struct {
	Username string
	Password string
}

type UserService interface {
	GetUser(id int64) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUser(id int64, update UserUpdate) (*models.User, error)
	DeleteUser(id int64) error
}

type userService struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetUser(id int64) (*models.User, error) {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers() ([]models.User, error) {
	users, err := s.repo.ListUsers()
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies a username and/or password change. Renaming to a
// username held by a different user is a conflict; renaming a user to its
// own current username is not.
func (s *userService) UpdateUser(id int64, update UserUpdate) (*models.User, error) {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Failed to get user for update", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if update.Username != "" && update.Username != user.Username {
		existing, err := s.repo.GetUserByUsername(update.Username)
		if err == nil && existing.ID != id {
			return nil, ErrUserAlreadyExists
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("Failed to check username uniqueness", zap.Error(err))
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		user.Username = update.Username
	}

	if update.Password != "" {
		passwordHash, err := auth.HashPassword(update.Password)
		if err != nil {
			s.logger.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	if err := s.repo.UpdateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Failed to update user", zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteUser(id int64) error {
	if err := s.repo.DeleteUser(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("Failed to delete user", zap.Error(err))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.logger.Info("User deleted", zap.Int64("id", id))
	return nil
}
