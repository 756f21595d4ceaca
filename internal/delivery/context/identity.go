// Package context provides helpers for values carried through the request
// processing context.
package context

import (
	"github.com/labstack/echo/v4"

	"myflix/internal/domain/entity"
)

// keyAuthorizedUser stores the identity resolved by the authorization gate.
// It is scoped to a single request; the core never caches it beyond that.
const keyAuthorizedUser = "authorizedUser"

// SetAuthorizedUser attaches the gate-resolved user record to the request.
func SetAuthorizedUser(c echo.Context, user *entity.User) {
	c.Set(keyAuthorizedUser, user)
}

// GetAuthorizedUser returns the identity attached by the authorization gate,
// or nil when the request never passed the gate.
func GetAuthorizedUser(c echo.Context) *entity.User {
	user, _ := c.Get(keyAuthorizedUser).(*entity.User)

	return user
}
