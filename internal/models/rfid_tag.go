package models

import (
	"database/sql"
	"time"
)

// RFIDTag is a physical tag identified by its UID, optionally bound to a user.
type RFIDTag struct {
	ID        int64         `db:"id"`
	TagUID    string        `db:"tag_uid"`
	UserID    sql.NullInt64 `db:"user_id"`
	CreatedAt time.Time     `db:"created_at"`
}
