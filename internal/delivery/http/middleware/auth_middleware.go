package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/usecase"
)

// actorContextKey is the echo context key the resolved identity is stored under.
const actorContextKey = "actor"

// tokenScheme is the Authorization scheme of the opaque credential.
const tokenScheme = "Token "

// AuthMiddleware resolves the opaque bearer token to the acting identity.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// Authenticate validates the Authorization header and stores the Actor on the
// context. Requests without a valid token are rejected with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, ok := tokenKeyFromHeader(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		actor, err := m.accountUC.Authenticate(c.Request().Context(), key)
		if err != nil {
			return err
		}

		c.Set(actorContextKey, *actor)

		return next(c)
	}
}

// AuthenticateOptional resolves the identity when a token is presented but
// lets anonymous requests through. A presented-but-invalid token still fails.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, ok := tokenKeyFromHeader(c)
		if !ok {
			return next(c)
		}

		actor, err := m.accountUC.Authenticate(c.Request().Context(), key)
		if err != nil {
			return err
		}

		c.Set(actorContextKey, *actor)

		return next(c)
	}
}

// GetActor returns the identity stored by Authenticate.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(usecase.Actor)

	return actor, ok
}

// tokenKeyFromHeader extracts the opaque key from "Authorization: Token <key>".
func tokenKeyFromHeader(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	key := strings.TrimPrefix(header, tokenScheme)
	if key == header || key == "" {
		return "", false
	}

	return key, true
}
