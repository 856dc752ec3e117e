// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderInProgress is the initial state of every order.
	OrderInProgress OrderStatus = "in_progress"
	// OrderCompleted marks an order delivered by the business user.
	OrderCompleted OrderStatus = "completed"
	// OrderCancelled marks an order that will not be delivered.
	OrderCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order is an immutable snapshot of one OfferDetail taken at purchase time,
// linking the ordering customer and the offering business user. Later edits to
// the source offer never change an existing order; only Status is mutable, and
// only by the business participant.
type Order struct {
	ID                 uuid.UUID       // The unique identifier for the order.
	CustomerUserID     uuid.UUID       // The customer who placed the order.
	BusinessUserID     uuid.UUID       // The business user the order was placed with.
	Title              string          // Snapshot of the tier title.
	Revisions          int             // Snapshot of the included revisions (-1 = unlimited).
	DeliveryTimeInDays int             // Snapshot of the promised delivery time.
	Price              decimal.Decimal // Snapshot of the tier price.
	Features           []string        // Snapshot of the included features.
	OfferType          TierType        // Snapshot of the tier tag.
	Status             OrderStatus     // Current lifecycle state.
	CreatedAt          time.Time       // Timestamp of order creation.
	UpdatedAt          time.Time       // Timestamp of the last modification.
}
