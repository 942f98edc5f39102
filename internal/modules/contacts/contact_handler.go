package contacts

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

// contactIDParam parses the :contactId path parameter as a positive integer.
func contactIDParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("contactId"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "contact id must be a positive number")
	}
	return id, nil
}

func (h *Handler) Create(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}

	var req models.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	contact, err := h.service.Create(c.Request().Context(), user.Username, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewDataResponse(contact))
}

func (h *Handler) Get(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return err
	}

	contact, err := h.service.Get(c.Request().Context(), user.Username, contactID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse(contact))
}

func (h *Handler) Update(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return err
	}

	var req models.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	contact, err := h.service.Update(c.Request().Context(), user.Username, contactID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse(contact))
}

func (h *Handler) Delete(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}
	contactID, err := contactIDParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.Username, contactID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewDataResponse("OK"))
}

func (h *Handler) Search(c echo.Context) error {
	user, err := utils.GetAuthUser(c)
	if err != nil {
		return err
	}

	req := models.SearchContactRequest{Page: 1, Size: 10}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	contacts, total, err := h.service.Search(c.Request().Context(), user.Username, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewPaginatedResponse(contacts, req.Page, req.Size, total))
}
