package context

import (
	"survey/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the echo.Context key of the user resolved by a guard.
const KeyUser ContextKey = "user"

// SetUser records the authenticated user for downstream handlers.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the user set by a guard, or nil on unguarded routes.
func GetUser(c echo.Context) *entity.User {
	user, _ := c.Get(string(KeyUser)).(*entity.User)

	return user
}
