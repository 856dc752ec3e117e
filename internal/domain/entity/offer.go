// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnlimitedRevisions is the sentinel value for a tier granting unlimited revisions.
const UnlimitedRevisions = -1

// Offer is a service published by a business user. It always owns exactly
// three OfferDetails, one per pricing tier; the details live and die with the
// offer.
type Offer struct {
	ID          uuid.UUID     // The unique identifier for the offer.
	UserID      uuid.UUID     // The business user owning this offer.
	User        *User         // The owning user when loaded by the repository.
	Title       string        // Short offer title.
	Image       string        // Reference to an uploaded offer image (pass-through field).
	Description string        // Long-form offer description.
	Details     []OfferDetail // Exactly three tiers: basic, standard, premium.
	CreatedAt   time.Time     // Timestamp of offer creation.
	UpdatedAt   time.Time     // Timestamp of the last modification.
}

// DetailByTier returns the detail carrying the given tier tag, or nil when the
// offer has no such tier loaded.
func (o *Offer) DetailByTier(tier TierType) *OfferDetail {
	for i := range o.Details {
		if o.Details[i].OfferType == tier {
			return &o.Details[i]
		}
	}

	return nil
}

// MinPrice returns the lowest price across the offer's details, or nil when no
// details are loaded.
func (o *Offer) MinPrice() *decimal.Decimal {
	var minPrice *decimal.Decimal
	for i := range o.Details {
		p := o.Details[i].Price
		if minPrice == nil || p.LessThan(*minPrice) {
			minPrice = &p
		}
	}

	return minPrice
}

// MinDeliveryTime returns the shortest delivery time in days across the
// offer's details, or nil when no details are loaded.
func (o *Offer) MinDeliveryTime() *int {
	var minDays *int
	for i := range o.Details {
		d := o.Details[i].DeliveryTimeInDays
		if minDays == nil || d < *minDays {
			minDays = &d
		}
	}

	return minDays
}

// OfferDetail is one pricing tier of an offer. Created together with its offer
// in one transaction and removed by cascade when the offer is deleted.
type OfferDetail struct {
	ID                 uuid.UUID       // The unique identifier for the detail.
	OfferID            uuid.UUID       // Foreign key to the owning offer.
	Title              string          // Tier-specific title.
	Revisions          int             // Number of included revisions, -1 meaning unlimited.
	DeliveryTimeInDays int             // Promised delivery time in days.
	Price              decimal.Decimal // Tier price.
	Features           []string        // Ordered list of included features.
	OfferType          TierType        // basic, standard or premium.
}
