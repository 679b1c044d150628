package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/HenricoTaiete/trabalho-Scar/internal/models"
)

type RFIDTagRepository interface {
	CreateTag(tag *models.RFIDTag) error
	GetTagByUID(tagUID string) (*models.RFIDTag, error)
	ListTags() ([]models.RFIDTag, error)
	DeleteTag(id int64) error
}

type rfidTagRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRFIDTagRepository(db *sqlx.DB, log *zap.Logger) RFIDTagRepository {
	return &rfidTagRepository{db: db, log: log}
}

func (r *rfidTagRepository) CreateTag(tag *models.RFIDTag) error {
	query := `INSERT INTO rfid_tags (tag_uid, user_id) VALUES ($1, $2) RETURNING id, created_at`
	err := r.db.QueryRowx(query, tag.TagUID, tag.UserID).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *rfidTagRepository) GetTagByUID(tagUID string) (*models.RFIDTag, error) {
	var tag models.RFIDTag
	query := `SELECT id, tag_uid, user_id, created_at FROM rfid_tags WHERE tag_uid = $1`
	if err := r.db.Get(&tag, query, tagUID); err != nil {
		return nil, translateError(err)
	}
	return &tag, nil
}

func (r *rfidTagRepository) ListTags() ([]models.RFIDTag, error) {
	tags := []models.RFIDTag{}
	query := `SELECT id, tag_uid, user_id, created_at FROM rfid_tags ORDER BY id`
	if err := r.db.Select(&tags, query); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *rfidTagRepository) DeleteTag(id int64) error {
	result, err := r.db.Exec(`DELETE FROM rfid_tags WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
