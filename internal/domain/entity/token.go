// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the opaque bearer credential issued at registration and login.
// Exactly one token row exists per user: repeated logins return the existing
// key instead of accumulating credentials.
type AuthToken struct {
	ID        uuid.UUID // The unique identifier for the token record.
	UserID    uuid.UUID // The user this credential belongs to, unique per user.
	Key       string    // The opaque token key presented on requests.
	CreatedAt time.Time // Timestamp of token issuance.
}
