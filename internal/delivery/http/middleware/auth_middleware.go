// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "myflix/internal/delivery/context"
	"myflix/internal/usecase"
)

// AuthMiddleware installs the authorization gate in front of protected
// routes. The decision logic lives in the AuthUsecase; this adapter only
// moves the header in and the resolved identity out.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token on the inbound request and attaches
// the resolved user record to the request. Any rejection short-circuits the
// pipeline; no handler code runs after a rejection.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)

		user, err := m.authUC.Authorize(c.Request().Context(), authHeader)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetAuthorizedUser(c, user)

		return next(c)
	}
}
