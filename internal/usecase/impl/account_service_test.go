package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	mockRepo "github.com/Danielluzius/coderr-backend/internal/mocks/repository"
	mockService "github.com/Danielluzius/coderr-backend/internal/mocks/service"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	tokenRepo    *mockRepo.MockTokenRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		TokenRepo:    tokenRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:         "exampleUsername",
		Email:            "example@mail.de",
		Password:         "examplePassword",
		RepeatedPassword: "examplePassword",
		Type:             "customer",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	fx.tokenService.EXPECT().GenerateKey().Return("fresh-key", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockTokenRepo.EXPECT().
				GetOrCreate(ctx, mock.AnythingOfType("uuid.UUID"), "fresh-key").
				Return(&entity.AuthToken{Key: "fresh-key"}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "fresh-key", output.Token)
	assert.Equal(t, input.Username, output.Username)
	assert.Equal(t, input.Email, output.Email)
	assert.NotEqual(t, uuid.Nil, output.UserID)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "exampleUsername",
		Email:        "example@mail.de",
		PasswordHash: "hashed-password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "exampleUsername").Return(user, nil)
	fx.hasher.EXPECT().Check("examplePassword", "hashed-password").Return(true)
	fx.tokenService.EXPECT().GenerateKey().Return("fresh-key", nil)
	fx.tokenRepo.EXPECT().
		GetOrCreate(ctx, userID, "fresh-key").
		Return(&entity.AuthToken{UserID: userID, Key: "existing-key"}, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "exampleUsername",
		Password: "examplePassword",
	})

	require.NoError(t, err)
	// The repository may hand back a previously issued key; the login result
	// must carry whatever the store returned, not the freshly generated one.
	assert.Equal(t, "existing-key", output.Token)
	assert.Equal(t, userID, output.UserID)
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().
		FindByKey(ctx, "presented-key").
		Return(&entity.AuthToken{UserID: userID, Key: "presented-key"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:      userID,
		IsStaff: true,
		Profile: &entity.Profile{UserID: userID, Type: entity.RoleBusiness},
	}, nil)

	actor, err := fx.service.Authenticate(ctx, "presented-key")

	require.NoError(t, err)
	assert.Equal(t, userID, actor.UserID)
	assert.Equal(t, entity.RoleBusiness, actor.Role)
	assert.True(t, actor.IsStaff)
	assert.True(t, actor.IsBusiness())
}
