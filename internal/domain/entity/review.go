// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for reviews, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left by a customer for a business user. At most one
// review may exist per (reviewer, business user) pair; a second attempt is a
// conflict, never an overwrite.
type Review struct {
	ID             uuid.UUID // The unique identifier for the review.
	BusinessUserID uuid.UUID // The business user being reviewed.
	ReviewerID     uuid.UUID // The customer who wrote the review.
	Rating         int       // Star rating between 1 and 5 inclusive.
	Description    string    // Free-text comment.
	CreatedAt      time.Time // Timestamp of review creation.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// IsValidRating reports whether the given rating lies within [MinRating, MaxRating].
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
