package repository

import (
	"context"
	"errors"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations of the order ledger.
type OrderRepository interface {
	// Create persists a new order snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Update persists changes to an order (status is the only mutable field).
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByParticipant returns all orders where the user is the customer or
	// the business side, newest first.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// CountByBusinessAndStatus counts orders of a business user in a status.
	CountByBusinessAndStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}
