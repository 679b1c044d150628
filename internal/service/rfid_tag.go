package service

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/HenricoTaiete/trabalho-Scar/internal/models"
	"github.com/HenricoTaiete/trabalho-Scar/internal/repository"
)

var (
	ErrTagAlreadyExists = errors.New("tag already exists")
	ErrTagNotFound      = errors.New("tag not found")
)

type RFIDTagService interface {
	RegisterTag(tagUID string, userID *int64) (*models.RFIDTag, error)
	GetTag(tagUID string) (*models.RFIDTag, error)
	ListTags() ([]models.RFIDTag, error)
	DeleteTag(id int64) error
}

type rfidTagService struct {
	tags   repository.RFIDTagRepository
	users  repository.UserRepository
	logger *zap.Logger
}

func NewRFIDTagService(tags repository.RFIDTagRepository, users repository.UserRepository, logger *zap.Logger) RFIDTagService {
	return &rfidTagService{tags: tags, users: users, logger: logger}
}

// RegisterTag stores a new tag, optionally bound to an existing user.
func (s *rfidTagService) RegisterTag(tagUID string, userID *int64) (*models.RFIDTag, error) {
	if tagUID == "" {
		return nil, ErrInvalidInput
	}

	tag := &models.RFIDTag{TagUID: tagUID}
	if userID != nil {
		if _, err := s.users.GetUserByID(*userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			s.logger.Error("Failed to check tag owner", zap.Error(err))
			return nil, fmt.Errorf("failed to check tag owner: %w", err)
		}
		tag.UserID = sql.NullInt64{Int64: *userID, Valid: true}
	}

	if err := s.tags.CreateTag(tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrTagAlreadyExists
		}
		s.logger.Error("Failed to create tag", zap.Error(err))
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

func (s *rfidTagService) GetTag(tagUID string) (*models.RFIDTag, error) {
	tag, err := s.tags.GetTagByUID(tagUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTagNotFound
		}
		s.logger.Error("Failed to get tag", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve tag: %w", err)
	}
	return tag, nil
}

func (s *rfidTagService) ListTags() ([]models.RFIDTag, error) {
	tags, err := s.tags.ListTags()
	if err != nil {
		s.logger.Error("Failed to list tags", zap.Error(err))
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func (s *rfidTagService) DeleteTag(id int64) error {
	if err := s.tags.DeleteTag(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTagNotFound
		}
		s.logger.Error("Failed to delete tag", zap.Error(err))
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}
