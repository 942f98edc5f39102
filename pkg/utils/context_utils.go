package utils

import (
	"contact-management/internal/models"

	"github.com/labstack/echo/v4"
)

// AuthUserKey is the context key under which the authentication middleware
// stores the resolved user.
const AuthUserKey = "user"

// GetAuthUser returns the authenticated user attached to the request context.
// It fails if the route was registered without the authentication middleware.
func GetAuthUser(c echo.Context) (*models.User, error) {
	user, ok := c.Get(AuthUserKey).(*models.User)
	if !ok || user == nil {
		return nil, models.ErrUnauthorized
	}
	return user, nil
}
