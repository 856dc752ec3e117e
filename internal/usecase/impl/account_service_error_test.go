package impl

import (
	"context"
	"testing"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	mockRepo "github.com/Danielluzius/coderr-backend/internal/mocks/repository"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestAccountService(t)

	input := validRegisterInput()
	input.RepeatedPassword = "somethingElse"

	output, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), "repeated_password")
}

func TestAccountService_Register_InvalidType(t *testing.T) {
	fx := createTestAccountService(t)

	input := validRegisterInput()
	input.Type = "admin"

	_, err := fx.service.Register(context.Background(), input)

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), "type")
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockRepo.NewMockTokenRepository(t))
			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(&entity.User{Username: input.Username}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, input)

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), "username")
}

func TestAccountService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{Username: "exampleUsername", PasswordHash: "hashed-password"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "exampleUsername").Return(user, nil)
	fx.hasher.EXPECT().Check("wrongPassword", "hashed-password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "exampleUsername",
		Password: "wrongPassword",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Authenticate_UnknownToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		FindByKey(ctx, "bogus-key").
		Return(nil, repository.ErrTokenNotFound)

	actor, err := fx.service.Authenticate(ctx, "bogus-key")

	assert.Nil(t, actor)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
