package addresses

import (
	"net/http"
	"strconv"

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

func idParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive number")
	}
	return id, nil
}

func (h *Handler) Create(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return err
	}

	var req models.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	address, err := h.service.Create(c.Request().Context(), user.Username, contactID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewDataResponse(address))
}

func (h *Handler) Get(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return err
	}
	addressID, err := idParam(c, "addressId")
	if err != nil {
		return err
	}

	address, err := h.service.Get(c.Request().Context(), user.Username, contactID, addressID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse(address))
}

func (h *Handler) Update(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return err
	}
	addressID, err := idParam(c, "addressId")
	if err != nil {
		return err
	}

	var req models.UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	address, err := h.service.Update(c.Request().Context(), user.Username, contactID, addressID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse(address))
}

func (h *Handler) Delete(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return err
	}
	addressID, err := idParam(c, "addressId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.Username, contactID, addressID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse("OK"))
}

func (h *Handler) List(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}
	contactID, err := idParam(c, "contactId")
	if err != nil {
		return err
	}

	addresses, err := h.service.List(c.Request().Context(), user.Username, contactID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse(addresses))
}
