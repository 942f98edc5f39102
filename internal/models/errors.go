package models

import "errors"

var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("User not found")

	// ErrContactNotFound is returned when a contact does not exist or is not
	// owned by the requesting user. The two cases are indistinguishable to the
	// caller so that one user cannot probe another user's contact ids.
	ErrContactNotFound = errors.New("Contact is not found")

	// ErrAddressNotFound is returned when an address does not exist under the
	// given contact. An address id belonging to a different contact resolves
	// to this error as well.
	ErrAddressNotFound = errors.New("Address is not found")

	// ErrUsernameTaken is returned when registering with a username that
	// already exists.
	ErrUsernameTaken = errors.New("Username already exists")

	// ErrInvalidCredentials is returned on login failure. The same error is
	// used for an unknown username and a wrong password so the response does
	// not leak which one was wrong.
	ErrInvalidCredentials = errors.New("Invalid username or password")

	// ErrUnauthorized is returned when a protected endpoint is called without
	// a valid session token.
	ErrUnauthorized = errors.New("Unauthorized")
)
