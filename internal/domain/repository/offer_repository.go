package repository

import (
	"context"
	"errors"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOfferNotFound is returned when an offer does not exist.
var ErrOfferNotFound = errors.New("offer not found")

// ErrOfferDetailNotFound is returned when an offer detail does not exist.
var ErrOfferDetailNotFound = errors.New("offer detail not found")

// OfferFilter narrows the offer list query. Zero-valued fields are ignored.
// MinPrice and MaxDeliveryTime match offers having ANY detail satisfying the
// bound, mirroring the join semantics of the list endpoint.
type OfferFilter struct {
	CreatorID       *uuid.UUID       // Only offers owned by this user.
	MinPrice        *decimal.Decimal // Only offers with a detail priced at least this.
	MaxDeliveryTime *int             // Only offers with a detail delivering within this many days.
	Search          string           // Case-insensitive substring match on title or description.
	OrderDescending bool             // Sort by updated_at descending when true, ascending otherwise.
}

// PageRequest selects one page of a list result.
type PageRequest struct {
	Page int // 1-based page number.
	Size int // Page size, already clamped by the caller.
}

// Offset returns the row offset of the page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Size
}

// OfferPage is one page of offers plus the total match count.
type OfferPage struct {
	Offers []*entity.Offer
	Total  int64
}

// OfferRepository defines the persistence operations of the offer catalog.
type OfferRepository interface {
	// Create persists an offer together with its three details as one unit.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer with its details.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindDetailByID retrieves a single offer detail.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// Update persists changes to an offer and its details.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete removes an offer; its details are removed by cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of offers matching the filter, with details and
	// the total match count.
	List(ctx context.Context, filter OfferFilter, page PageRequest) (*OfferPage, error)
}
