package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	mockusecase "github.com/Danielluzius/coderr-backend/internal/mocks/usecase"
	"github.com/Danielluzius/coderr-backend/internal/usecase"
)

func newTestContext(t *testing.T, authorization string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	accountUC := mockusecase.NewMockAccountUsecase(t)
	mw := NewAuthMiddleware(accountUC)

	actor := &usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	accountUC.EXPECT().
		Authenticate(mock.Anything, "a1b2c3").
		Return(actor, nil)

	c := newTestContext(t, "Token a1b2c3")
	var seen usecase.Actor
	next := func(c echo.Context) error {
		got, ok := GetActor(c)
		require.True(t, ok)
		seen = got

		return nil
	}

	err := mw.Authenticate(next)(c)
	assert.NoError(t, err)
	assert.Equal(t, actor.UserID, seen.UserID)
	assert.Equal(t, entity.RoleCustomer, seen.Role)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	accountUC := mockusecase.NewMockAccountUsecase(t)
	mw := NewAuthMiddleware(accountUC)

	c := newTestContext(t, "")
	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	accountUC := mockusecase.NewMockAccountUsecase(t)
	mw := NewAuthMiddleware(accountUC)

	c := newTestContext(t, "Bearer a1b2c3")
	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	accountUC := mockusecase.NewMockAccountUsecase(t)
	mw := NewAuthMiddleware(accountUC)

	accountUC.EXPECT().
		Authenticate(mock.Anything, "deadbeef").
		Return(nil, domainerrors.ErrUnauthenticated)

	c := newTestContext(t, "Token deadbeef")
	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticateOptional_AnonymousPassesThrough(t *testing.T) {
	accountUC := mockusecase.NewMockAccountUsecase(t)
	mw := NewAuthMiddleware(accountUC)

	c := newTestContext(t, "")
	called := false
	err := mw.AuthenticateOptional(func(c echo.Context) error {
		called = true
		_, ok := GetActor(c)
		assert.False(t, ok)

		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestAuthenticateOptional_InvalidTokenStillFails(t *testing.T) {
	accountUC := mockusecase.NewMockAccountUsecase(t)
	mw := NewAuthMiddleware(accountUC)

	accountUC.EXPECT().
		Authenticate(mock.Anything, "expired").
		Return(nil, domainerrors.ErrUnauthenticated)

	c := newTestContext(t, "Token expired")
	err := mw.AuthenticateOptional(func(c echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
