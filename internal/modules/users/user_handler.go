package users

import (
	"net/http"

	"contact-management/internal/models"
	"contact-management/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	service  ServiceInterface
	validate *validator.Validate
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) Register(c echo.Context) error {
	var req models.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewDataResponse(user))
}

func (h *Handler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	token, err := h.service.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse(token))
}

func (h *Handler) GetCurrent(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}

	current, err := h.service.Get(c.Request().Context(), user.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse(current))
}

func (h *Handler) UpdateCurrent(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), user.Username, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse(updated))
}

func (h *Handler) Logout(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Logout(c.Request().Context(), user.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse("OK"))
}
