package repository

import (
	"context"
	"errors"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ReviewOrdering names a sortable review column.
type ReviewOrdering string

const (
	// ReviewOrderByUpdatedAt sorts by last modification time.
	ReviewOrderByUpdatedAt ReviewOrdering = "updated_at"
	// ReviewOrderByRating sorts by star rating.
	ReviewOrderByRating ReviewOrdering = "rating"
)

// ReviewFilter narrows the review list query. Nil fields are ignored.
type ReviewFilter struct {
	BusinessUserID  *uuid.UUID     // Only reviews received by this business user.
	ReviewerID      *uuid.UUID     // Only reviews written by this reviewer.
	OrderBy         ReviewOrdering // Sort column, updated_at by default.
	OrderDescending bool           // Sort direction.
}

// ReviewRepository defines the persistence operations of the review ledger.
type ReviewRepository interface {
	// Create persists a new review. A duplicate (business_user, reviewer)
	// pair surfaces as a unique-constraint violation.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ExistsForPair reports whether the reviewer already reviewed the business user.
	ExistsForPair(ctx context.Context, reviewerID, businessUserID uuid.UUID) (bool, error)

	// Update persists changes to a review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all reviews matching the filter.
	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
}
