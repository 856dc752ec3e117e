// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferDetailInput is one pricing tier supplied at offer creation.
type OfferDetailInput struct {
	Title              string          `json:"title" validate:"required,max=200"`
	Revisions          int             `json:"revisions" validate:"min=-1"`
	DeliveryTimeInDays int             `json:"delivery_time_in_days" validate:"min=1"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features"`
	OfferType          string          `json:"offer_type" validate:"required"`
}

// CreateOfferInput defines the data required to publish a new offer.
type CreateOfferInput struct {
	Title       string             `json:"title" validate:"required,max=200"`
	Image       string             `json:"image"`
	Description string             `json:"description" validate:"required"`
	Details     []OfferDetailInput `json:"details" validate:"required"`
}

// OfferDetailPatch patches one existing tier, addressed by its tier tag.
// Nil fields are left unchanged; the tag itself can never be renamed.
type OfferDetailPatch struct {
	OfferType          string           `json:"offer_type" validate:"required"`
	Title              *string          `json:"title,omitempty"`
	Revisions          *int             `json:"revisions,omitempty"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days,omitempty"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	Features           *[]string        `json:"features,omitempty"`
}

// UpdateOfferInput patches an offer's top-level fields and/or a subset of its
// tiers.
type UpdateOfferInput struct {
	Title       *string            `json:"title,omitempty"`
	Image       *string            `json:"image,omitempty"`
	Description *string            `json:"description,omitempty"`
	Details     []OfferDetailPatch `json:"details,omitempty"`
}

// ListOffersInput carries the list filters and pagination parameters.
type ListOffersInput struct {
	CreatorID       *uuid.UUID
	MinPrice        *decimal.Decimal
	MaxDeliveryTime *int
	Search          string
	Ordering        string // "updated_at" or "-updated_at"; default "-updated_at".
	Page            int
	PageSize        int
}

// OfferListOutput is one page of offers plus the total match count.
type OfferListOutput struct {
	Count    int64
	Page     int
	PageSize int
	Results  []*entity.Offer
}

// OfferUsecase defines the offer catalog operations.
type OfferUsecase interface {
	// CreateOffer publishes an offer with exactly three tiers; business role only.
	CreateOffer(ctx context.Context, actor Actor, input *CreateOfferInput) (*entity.Offer, error)

	// GetOffer returns one offer with its details.
	GetOffer(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// GetOfferDetail returns one pricing tier.
	GetOfferDetail(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// UpdateOffer patches an offer; owner only. A detail patch naming a tier
	// not present on the offer is a validation error.
	UpdateOffer(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateOfferInput) (*entity.Offer, error)

	// DeleteOffer removes an offer and its tiers; owner only.
	DeleteOffer(ctx context.Context, actor Actor, id uuid.UUID) error

	// ListOffers returns a filtered, paginated offer page; open to anyone.
	ListOffers(ctx context.Context, input *ListOffersInput) (*OfferListOutput, error)
}
