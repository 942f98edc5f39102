package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contact-management/internal/models"
	"contact-management/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService records calls and returns canned responses.
type fakeService struct {
	registered  *models.RegisterUserRequest
	loggedOut   string
	updated     *models.UpdateUserRequest
	registerErr error
}

func (f *fakeService) Register(_ context.Context, req models.RegisterUserRequest) (*models.UserResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = &req
	return &models.UserResponse{Username: req.Username, Name: req.Name}, nil
}

func (f *fakeService) Login(_ context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	return &models.TokenResponse{Token: "issued-token"}, nil
}

func (f *fakeService) Get(_ context.Context, username string) (*models.UserResponse, error) {
	return &models.UserResponse{Username: username, Name: "n1"}, nil
}

func (f *fakeService) Update(_ context.Context, username string, req models.UpdateUserRequest) (*models.UserResponse, error) {
	f.updated = &req
	return &models.UserResponse{Username: username, Name: "n1"}, nil
}

func (f *fakeService) Logout(_ context.Context, username string) error {
	f.loggedOut = username
	return nil
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler(t *testing.T) {
	service := &fakeService{}
	handler := NewHandler(service)

	c, rec := newJSONContext(t, http.MethodPost, "/api/users", `{"username":"u1","password":"p1","name":"n1"}`)
	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"u1","name":"n1"}}`, rec.Body.String())
	require.NotNil(t, service.registered)
	assert.Equal(t, "p1", service.registered.Password)
}

func TestRegisterHandlerPropagatesServiceError(t *testing.T) {
	handler := NewHandler(&fakeService{registerErr: models.ErrUsernameTaken})

	c, _ := newJSONContext(t, http.MethodPost, "/api/users", `{"username":"u1","password":"p1","name":"n1"}`)
	assert.ErrorIs(t, handler.Register(c), models.ErrUsernameTaken)
}

func TestRegisterHandlerRejectsInvalidInput(t *testing.T) {
	service := &fakeService{}
	handler := NewHandler(service)

	c, _ := newJSONContext(t, http.MethodPost, "/api/users", `{"username":"","password":"","name":""}`)
	err := handler.Register(c)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Nil(t, service.registered, "service not reached on validation failure")
}

func TestRegisterHandlerRejectsMalformedBody(t *testing.T) {
	handler := NewHandler(&fakeService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/users", `{not json`)
	err := handler.Register(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestLoginHandler(t *testing.T) {
	handler := NewHandler(&fakeService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/users/login", `{"username":"u1","password":"p1"}`)
	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"token":"issued-token"}}`, rec.Body.String())
}

func TestGetCurrentHandlerRequiresIdentity(t *testing.T) {
	handler := NewHandler(&fakeService{})

	c, _ := newJSONContext(t, http.MethodGet, "/api/users/current", "")
	err := handler.GetCurrent(c)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestUpdateCurrentHandler(t *testing.T) {
	service := &fakeService{}
	handler := NewHandler(service)

	c, rec := newJSONContext(t, http.MethodPatch, "/api/users/current", `{"name":"renamed"}`)
	c.Set(utils.AuthUserKey, &models.User{Username: "u1"})
	require.NoError(t, handler.UpdateCurrent(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.updated)
	require.NotNil(t, service.updated.Name)
	assert.Equal(t, "renamed", *service.updated.Name)
	assert.Nil(t, service.updated.Password, "absent field stays absent")
}

func TestLogoutHandler(t *testing.T) {
	service := &fakeService{}
	handler := NewHandler(service)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/users/logout", "")
	c.Set(utils.AuthUserKey, &models.User{Username: "u1"})
	require.NoError(t, handler.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())
	assert.Equal(t, "u1", service.loggedOut)
}
