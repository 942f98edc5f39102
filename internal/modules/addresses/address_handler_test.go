package addresses

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

type fakeAddressService struct {
	address   *models.Address
	addresses []models.Address
	err       error
}

func (f *fakeAddressService) Create(_ context.Context, username string, contactID int, req models.CreateAddressRequest) (*models.Address, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.address, nil
}

func (f *fakeAddressService) Get(_ context.Context, username string, contactID, addressID int) (*models.Address, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.address, nil
}

func (f *fakeAddressService) Update(_ context.Context, username string, contactID, addressID int, req models.UpdateAddressRequest) (*models.Address, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.address, nil
}

func (f *fakeAddressService) Delete(_ context.Context, username string, contactID, addressID int) error {
	return f.err
}

func (f *fakeAddressService) List(_ context.Context, username string, contactID int) ([]models.Address, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.addresses, nil
}

func authedContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(utils.AuthUserKey, &models.User{Username: "owner"})
	return c, rec
}

func TestCreateAddressHandler(t *testing.T) {
	street := "Jalan Sudirman"
	handler := NewHandler(&fakeAddressService{
		address: &models.Address{ID: 1, Street: &street, Country: "Indonesia", PostalCode: "12345"},
	})

	c, rec := authedContext(t, http.MethodPost, "/api/contacts/1/addresses",
		`{"street":"Jalan Sudirman","country":"Indonesia","postal_code":"12345"}`)
	c.SetParamNames("contactId")
	c.SetParamValues("1")
	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":1,"street":"Jalan Sudirman","city":null,"province":null,"country":"Indonesia","postal_code":"12345"}}`, rec.Body.String())
}

func TestCreateAddressHandlerRejectsMissingCountry(t *testing.T) {
	handler := NewHandler(&fakeAddressService{})

	c, _ := authedContext(t, http.MethodPost, "/api/contacts/1/addresses", `{"postal_code":"12345"}`)
	c.SetParamNames("contactId")
	c.SetParamValues("1")

	err := handler.Create(c)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestAddressHandlerRejectsBadIDs(t *testing.T) {
	handler := NewHandler(&fakeAddressService{})

	cases := []struct {
		contactID string
		addressID string
	}{
		{"abc", "1"},
		{"1", "abc"},
		{"0", "1"},
		{"1", "-1"},
	}
	for _, tc := range cases {
		c, _ := authedContext(t, http.MethodGet, "/api/contacts/"+tc.contactID+"/addresses/"+tc.addressID, "")
		c.SetParamNames("contactId", "addressId")
		c.SetParamValues(tc.contactID, tc.addressID)

		err := handler.Get(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, "contact %q address %q", tc.contactID, tc.addressID)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	}
}

func TestGetAddressHandlerPropagatesNotFound(t *testing.T) {
	handler := NewHandler(&fakeAddressService{err: models.ErrAddressNotFound})

	c, _ := authedContext(t, http.MethodGet, "/api/contacts/1/addresses/2", "")
	c.SetParamNames("contactId", "addressId")
	c.SetParamValues("1", "2")

	assert.ErrorIs(t, handler.Get(c), models.ErrAddressNotFound)
}

func TestDeleteAddressHandler(t *testing.T) {
	handler := NewHandler(&fakeAddressService{})

	c, rec := authedContext(t, http.MethodDelete, "/api/contacts/1/addresses/2", "")
	c.SetParamNames("contactId", "addressId")
	c.SetParamValues("1", "2")
	require.NoError(t, handler.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())
}

func TestListAddressesHandler(t *testing.T) {
	handler := NewHandler(&fakeAddressService{addresses: []models.Address{
		{ID: 1, Country: "Indonesia", PostalCode: "12345"},
		{ID: 2, Country: "Singapore", PostalCode: "018956"},
	}})

	c, rec := authedContext(t, http.MethodGet, "/api/contacts/1/addresses", "")
	c.SetParamNames("contactId")
	c.SetParamValues("1")
	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[
		{"id":1,"street":null,"city":null,"province":null,"country":"Indonesia","postal_code":"12345"},
		{"id":2,"street":null,"city":null,"province":null,"country":"Singapore","postal_code":"018956"}
	]}`, rec.Body.String())
}
