package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Danielluzius/coderr-backend/internal/delivery/http/middleware"
	"github.com/Danielluzius/coderr-backend/internal/delivery/http/response"
	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/usecase"
)

// OrderHandler holds dependencies for order ledger handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// CreateOrder snapshots the chosen tier into a new order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), actor, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewOrderResponse(order))
}

// UpdateOrderStatus sets the order lifecycle state.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	var input usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), actor, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewOrderResponse(order))
}

// DeleteOrder removes an order; staff only.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrders serves all orders the caller participates in.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewOrderList(orders))
}

// CountInProgressOrders serves the in-progress order count of a business user.
func (h *OrderHandler) CountInProgressOrders(c echo.Context) error {
	businessUserID, err := uuid.Parse(c.Param("business_user_id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	count, err := h.uc.CountOrders(c.Request().Context(), businessUserID, entity.OrderInProgress)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.OrderCount{OrderCount: count})
}

// CountCompletedOrders serves the completed order count of a business user.
func (h *OrderHandler) CountCompletedOrders(c echo.Context) error {
	businessUserID, err := uuid.Parse(c.Param("business_user_id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	count, err := h.uc.CountOrders(c.Request().Context(), businessUserID, entity.OrderCompleted)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.CompletedOrderCount{CompletedOrderCount: count})
}
