package models

// User is the account record. Username is the primary key and doubles as the
// owner reference on contacts. Token holds the single active session token;
// NULL means logged out.
type User struct {
	Username     string  `json:"username" db:"username"`
	Name         string  `json:"name" db:"name"`
	PasswordHash string  `json:"-" db:"password"`
	Token        *string `json:"-" db:"token"`
}

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries a partial profile update. Absent fields are left
// untouched, so both are pointers.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=100"`
}

// UserResponse is the public projection of a user. The password hash and the
// session token are never part of it.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse is the login payload: only the freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}
