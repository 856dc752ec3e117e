// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a business user.
type CreateReviewInput struct {
	BusinessUserID uuid.UUID `json:"business_user" validate:"required"`
	Rating         int       `json:"rating" validate:"required"`
	Description    string    `json:"description"`
}

// UpdateReviewInput patches a review's mutable fields. Nil means unchanged.
type UpdateReviewInput struct {
	Rating      *int    `json:"rating,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListReviewsInput carries the review list filters.
type ListReviewsInput struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       string // "updated_at", "-updated_at", "rating" or "-rating"; default "-updated_at".
}

// ReviewUsecase defines the review ledger operations.
type ReviewUsecase interface {
	// CreateReview records a rating; customer role only, at most one review
	// per (reviewer, business user) pair.
	CreateReview(ctx context.Context, actor Actor, input *CreateReviewInput) (*entity.Review, error)

	// UpdateReview patches rating or description; reviewer only.
	UpdateReview(ctx context.Context, actor Actor, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes a review; reviewer only.
	DeleteReview(ctx context.Context, actor Actor, reviewID uuid.UUID) error

	// ListReviews returns all reviews matching the filters.
	ListReviews(ctx context.Context, input *ListReviewsInput) ([]*entity.Review, error)
}
