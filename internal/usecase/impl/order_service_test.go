package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	mockRepo "github.com/Danielluzius/coderr-backend/internal/mocks/repository"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func TestOrderService_CreateOrder_SnapshotsTier(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customer := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	businessUserID := uuid.New()
	offerID := uuid.New()
	detailID := uuid.New()

	detail := &entity.OfferDetail{
		ID:                 detailID,
		OfferID:            offerID,
		Title:              "Basic Design",
		Revisions:          2,
		DeliveryTimeInDays: 5,
		Price:              decimal.NewFromInt(100),
		Features:           []string{"Logo Design"},
		OfferType:          entity.TierBasic,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOfferRepo.EXPECT().FindDetailByID(ctx, detailID).Return(detail, nil)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.Offer{ID: offerID, UserID: businessUserID}, nil)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, customer, &usecase.CreateOrderInput{OfferDetailID: detailID})

	require.NoError(t, err)
	assert.Equal(t, customer.UserID, order.CustomerUserID)
	assert.Equal(t, businessUserID, order.BusinessUserID)
	assert.Equal(t, "Basic Design", order.Title)
	assert.Equal(t, 2, order.Revisions)
	assert.Equal(t, 5, order.DeliveryTimeInDays)
	assert.True(t, detail.Price.Equal(order.Price))
	assert.Equal(t, []string{"Logo Design"}, order.Features)
	assert.Equal(t, entity.TierBasic, order.OfferType)
	assert.Equal(t, entity.OrderInProgress, order.Status)
}

func TestOrderService_CreateOrder_ForbiddenForBusiness(t *testing.T) {
	fx := createTestOrderService(t)

	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}

	order, err := fx.service.CreateOrder(context.Background(), actor, &usecase.CreateOrderInput{OfferDetailID: uuid.New()})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_CreateOrder_DetailNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customer := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	detailID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindDetailByID(ctx, detailID).Return(nil, repository.ErrOfferDetailNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateOrder(ctx, customer, &usecase.CreateOrderInput{OfferDetailID: detailID})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	business := usecase.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}
	orderID := uuid.New()

	existingOrder := &entity.Order{
		ID:             orderID,
		BusinessUserID: business.UserID,
		Status:         entity.OrderInProgress,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(existingOrder, nil)
			mockOrderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.UpdateOrderStatus(ctx, business, orderID, &usecase.UpdateOrderStatusInput{Status: "completed"})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, order.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	business := usecase.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}

	_, err := fx.service.UpdateOrderStatus(context.Background(), business, uuid.New(), &usecase.UpdateOrderStatusInput{Status: "done"})

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), "status")
}

func TestOrderService_UpdateOrderStatus_ForbiddenForCustomerSide(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customer := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	orderID := uuid.New()

	existingOrder := &entity.Order{
		ID:             orderID,
		CustomerUserID: customer.UserID,
		BusinessUserID: uuid.New(),
		Status:         entity.OrderInProgress,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(existingOrder, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateOrderStatus(ctx, customer, orderID, &usecase.UpdateOrderStatusInput{Status: "cancelled"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_DeleteOrder_ForbiddenForNonStaff(t *testing.T) {
	fx := createTestOrderService(t)

	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}

	err := fx.service.DeleteOrder(context.Background(), actor, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_DeleteOrder_StaffSuccess(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staff := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer, IsStaff: true}
	orderID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
			mockOrderRepo.EXPECT().Delete(ctx, orderID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteOrder(ctx, staff, orderID)

	require.NoError(t, err)
}

func TestOrderService_ListOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	expected := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.orderRepo.EXPECT().ListByParticipant(ctx, actor.UserID).Return(expected, nil)

	orders, err := fx.service.ListOrders(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_CountOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	businessUserID := uuid.New()

	fx.userRepo.EXPECT().HasBusinessProfile(ctx, businessUserID).Return(true, nil)
	fx.orderRepo.EXPECT().
		CountByBusinessAndStatus(ctx, businessUserID, entity.OrderInProgress).
		Return(int64(4), nil)

	count, err := fx.service.CountOrders(ctx, businessUserID, entity.OrderInProgress)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestOrderService_CountOrders_NotABusinessUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().HasBusinessProfile(ctx, userID).Return(false, nil)

	_, err := fx.service.CountOrders(ctx, userID, entity.OrderCompleted)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
