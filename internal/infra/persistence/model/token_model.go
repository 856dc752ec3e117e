package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthTokenModel mirrors the 'auth_tokens' table. One row per user; the key
// is the opaque value presented in the Authorization header.
type AuthTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;unique"`
	Key       string    `gorm:"type:varchar(40);not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthTokenModel) TableName() string {
	return "auth_tokens"
}
