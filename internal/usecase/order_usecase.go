// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput selects the offer tier being purchased.
type CreateOrderInput struct {
	OfferDetailID uuid.UUID `json:"offer_detail_id" validate:"required"`
}

// UpdateOrderStatusInput carries the new lifecycle state.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderUsecase defines the order ledger operations.
type OrderUsecase interface {
	// CreateOrder snapshots the chosen tier into a new order; customer role only.
	CreateOrder(ctx context.Context, actor Actor, input *CreateOrderInput) (*entity.Order, error)

	// UpdateOrderStatus sets the order status; business participant only.
	// Any of the three enum values is accepted regardless of the current
	// state; no transition graph is enforced.
	UpdateOrderStatus(ctx context.Context, actor Actor, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	// DeleteOrder removes an order; staff only.
	DeleteOrder(ctx context.Context, actor Actor, orderID uuid.UUID) error

	// ListOrders returns all orders the actor participates in, on either side.
	ListOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// CountOrders counts a business user's orders in the given status.
	// It fails with a not-found error when the ID does not belong to a
	// business-role profile.
	CountOrders(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}
