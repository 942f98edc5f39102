package api

import (
	"net/http"

	"contact-management/internal/modules/addresses"
	"contact-management/internal/modules/contacts"
	"contact-management/internal/modules/users"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all the API endpoints for the application.
// Register and login are the only public routes; everything else goes through
// the token authentication middleware.
func SetupRoutes(
	e *echo.Echo,
	userHandler *users.Handler,
	contactHandler *contacts.Handler,
	addressHandler *addresses.Handler,
	authMiddleware echo.MiddlewareFunc,
) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Contact Management API"})
	})

	api := e.Group("/api")

	// --- Public Routes ---
	api.POST("/users", userHandler.Register)
	api.POST("/users/login", userHandler.Login)

	// --- Protected Routes ---
	protected := api.Group("", authMiddleware)
	{
		// User API
		protected.GET("/users/current", userHandler.GetCurrent)
		protected.PATCH("/users/current", userHandler.UpdateCurrent)
		protected.DELETE("/users/logout", userHandler.Logout)

		// Contact API
		protected.POST("/contacts", contactHandler.Create)
		protected.GET("/contacts", contactHandler.Search)
		protected.GET("/contacts/:contactId", contactHandler.Get)
		protected.PUT("/contacts/:contactId", contactHandler.Update)
		protected.DELETE("/contacts/:contactId", contactHandler.Delete)

		// Address API
		protected.POST("/contacts/:contactId/addresses", addressHandler.Create)
		protected.GET("/contacts/:contactId/addresses", addressHandler.List)
		protected.GET("/contacts/:contactId/addresses/:addressId", addressHandler.Get)
		protected.PUT("/contacts/:contactId/addresses/:addressId", addressHandler.Update)
		protected.DELETE("/contacts/:contactId/addresses/:addressId", addressHandler.Delete)
	}
}
