package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/HenricoTaiete/trabalho-Scar/internal/models"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert or update hits a unique constraint.
var ErrDuplicate = errors.New("record already exists")

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id int64) error
	ListUsers() ([]models.User, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewUserRepository(db *sqlx.DB, log *zap.Logger) UserRepository {
	return &userRepository{db: db, log: log}
}

func (r *userRepository) CreateUser(user *models.User) error {
	query := `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	err := r.db.QueryRowx(query, user.Username, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`
	if err := r.db.Get(&user, query, username); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(id int64) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, password_hash, created_at FROM users WHERE id = $1`
	if err := r.db.Get(&user, query, id); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(user *models.User) error {
	query := `UPDATE users SET username = $1, password_hash = $2 WHERE id = $3 RETURNING created_at`
	err := r.db.QueryRowx(query, user.Username, user.PasswordHash, user.ID).Scan(&user.CreatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *userRepository) DeleteUser(id int64) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
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

func (r *userRepository) ListUsers() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT id, username, password_hash, created_at FROM users ORDER BY id`
	if err := r.db.Select(&users, query); err != nil {
		return nil, err
	}
	return users, nil
}

// translateError maps driver errors to the repository sentinels. A unique
// violation surfaces as ErrDuplicate so the service can report a conflict
// even when two requests race past its own existence check.
func translateError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
