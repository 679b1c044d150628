package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Claims defines the structure of the JWT claims. Subject carries the
// username; UserID identifies the user record the token was issued for.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}
