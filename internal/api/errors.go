package api

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"contact-management/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler is the single boundary that maps every error surfaced by a
// handler or middleware to its HTTP status and the uniform error envelope.
// Anything unclassified becomes a 500 without leaking internals.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var payload any = "Internal Server Error"

	var validationErrs validator.ValidationErrors
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &validationErrs):
		status = http.StatusBadRequest
		payload = formatValidationErrors(validationErrs)
	case errors.Is(err, models.ErrUsernameTaken):
		status = http.StatusBadRequest
		payload = models.ErrUsernameTaken.Error()
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		payload = models.ErrInvalidCredentials.Error()
	case errors.Is(err, models.ErrUnauthorized):
		status = http.StatusUnauthorized
		payload = models.ErrUnauthorized.Error()
	case errors.Is(err, models.ErrUserNotFound):
		status = http.StatusNotFound
		payload = models.ErrUserNotFound.Error()
	case errors.Is(err, models.ErrContactNotFound):
		status = http.StatusNotFound
		payload = models.ErrContactNotFound.Error()
	case errors.Is(err, models.ErrAddressNotFound):
		status = http.StatusNotFound
		payload = models.ErrAddressNotFound.Error()
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			payload = msg
		}
	default:
		c.Logger().Error("api.HTTPErrorHandler: ", err)
	}

	if writeErr := c.JSON(status, models.ErrorResponse{Errors: payload}); writeErr != nil {
		c.Logger().Error("api.HTTPErrorHandler.JSON: ", writeErr)
	}
}

// formatValidationErrors aggregates per-field violations into one map keyed by
// the request's JSON field names.
func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[snakeCase(fe.Field())] = validationMessage(fe)
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

func snakeCase(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
