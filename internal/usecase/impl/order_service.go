package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Danielluzius/coderr-backend/internal/delivery/context"
	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder copies the chosen tier into a new order so that later offer
// edits never change what was agreed at purchase time.
func (srv *orderService) CreateOrder(ctx context.Context, actor usecase.Actor, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order",
		slog.Any("userID", actor.UserID), slog.Any("offerDetailID", input.OfferDetailID))

	if !actor.IsCustomer() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only customers may place orders")
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		detail, err := offerRepo.FindDetailByID(ctx, input.OfferDetailID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "offer detail not found")
			}

			return errors.Wrap(err, "failed to find offer detail")
		}

		offer, err := offerRepo.FindByID(ctx, detail.OfferID)
		if err != nil {
			return errors.Wrap(err, "failed to find owning offer")
		}

		order = &entity.Order{
			CustomerUserID:     actor.UserID,
			BusinessUserID:     offer.UserID,
			Title:              detail.Title,
			Revisions:          detail.Revisions,
			DeliveryTimeInDays: detail.DeliveryTimeInDays,
			Price:              detail.Price,
			Features:           detail.Features,
			OfferType:          detail.OfferType,
			Status:             entity.OrderInProgress,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", order.ID))

	return order, nil
}

// UpdateOrderStatus sets the order's lifecycle state. Only the business side
// of the order may do this; any valid status value is accepted regardless of
// the current one.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	srv.log(ctx).Info("Updating order status",
		slog.Any("orderID", orderID), slog.String("status", input.Status))

	status := entity.OrderStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.NewFieldErrors().
			Add("status", "Status must be one of: in_progress, completed, cancelled.")
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if order.BusinessUserID != actor.UserID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the business participant may update the status")
		}

		order.Status = status
		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order update transaction")
	}

	return updated, nil
}

// DeleteOrder removes an order entirely. Reserved for staff.
func (srv *orderService) DeleteOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) error {
	srv.log(ctx).Info("Deleting order", slog.Any("orderID", orderID), slog.Any("userID", actor.UserID))

	if !actor.IsStaff {
		return errors.Wrap(domainerrors.ErrForbidden, "only staff may delete orders")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if _, err := orderRepo.FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if err := orderRepo.Delete(ctx, orderID); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute order deletion transaction")
	}

	return nil
}

// ListOrders returns every order the actor is part of, as customer or as
// business user.
func (srv *orderService) ListOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByParticipant(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CountOrders counts a business user's orders in the given status. The target
// must carry a business profile; otherwise the count is reported as not found
// rather than zero.
func (srv *orderService) CountOrders(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
	isBusiness, err := srv.userRepo.HasBusinessProfile(ctx, businessUserID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to check business profile")
	}
	if !isBusiness {
		return 0, errors.Wrap(domainerrors.ErrNotFound, "no business user with this id")
	}

	count, err := srv.orderRepo.CountByBusinessAndStatus(ctx, businessUserID, status)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}
