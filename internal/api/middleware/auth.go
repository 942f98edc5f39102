package middleware

import (
	"context"
	"errors"

	"contact-management/internal/models"
	"contact-management/pkg/utils"

	"github.com/labstack/echo/v4"
)

// TokenResolver looks up the user whose stored session token equals the
// supplied value. The users repository satisfies this.
type TokenResolver interface {
	FindByToken(ctx context.Context, token string) (*models.User, error)
}

// TokenAuth returns middleware that authenticates requests by the opaque
// session token carried verbatim in the Authorization header. On success the
// resolved user is attached to the request context; otherwise the request is
// rejected before reaching any handler.
func TokenAuth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(echo.HeaderAuthorization)
			if token == "" {
				return models.ErrUnauthorized
			}

			user, err := resolver.FindByToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, models.ErrUserNotFound) {
					return models.ErrUnauthorized
				}
				c.Logger().Error("middleware.TokenAuth: ", err)
				return err
			}

			c.Set(utils.AuthUserKey, user)
			return next(c)
		}
	}
}
