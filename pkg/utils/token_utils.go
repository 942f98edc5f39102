package utils

import "github.com/google/uuid"

// NewSessionToken creates an opaque session token. The token has no intrinsic
// structure; it is equality-compared against the value stored on the user row.
func NewSessionToken() string {
	return uuid.NewString()
}
