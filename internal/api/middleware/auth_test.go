package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"contact-management/internal/models"
	"contact-management/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	token string
	user  *models.User
	calls int
}

func (f *fakeResolver) FindByToken(_ context.Context, token string) (*models.User, error) {
	f.calls++
	if token == f.token {
		return f.user, nil
	}
	return nil, models.ErrUserNotFound
}

func runAuth(t *testing.T, resolver TokenResolver, header string) (error, bool, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := TokenAuth(resolver)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	return handler(c), reached, c
}

func TestTokenAuthSuccess(t *testing.T) {
	user := &models.User{Username: "u1", Name: "n1"}
	resolver := &fakeResolver{token: "session-token", user: user}

	err, reached, c := runAuth(t, resolver, "session-token")
	require.NoError(t, err)
	assert.True(t, reached)

	authUser, err := utils.GetAuthUser(c)
	require.NoError(t, err)
	assert.Equal(t, user, authUser)
}

func TestTokenAuthMissingHeader(t *testing.T) {
	resolver := &fakeResolver{token: "session-token", user: &models.User{Username: "u1"}}

	err, reached, _ := runAuth(t, resolver, "")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.False(t, reached, "handler must not run without identity")
	assert.Zero(t, resolver.calls, "no lookup for an absent token")
}

func TestTokenAuthUnknownToken(t *testing.T) {
	resolver := &fakeResolver{token: "session-token", user: &models.User{Username: "u1"}}

	err, reached, _ := runAuth(t, resolver, "wrong")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.False(t, reached)
}
