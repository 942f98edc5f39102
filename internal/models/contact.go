package models

// Contact belongs to exactly one user via Username, set at creation.
// Only FirstName is mandatory; the rest are nullable.
type Contact struct {
	ID        int     `json:"id" db:"id"`
	Username  string  `json:"-" db:"username"`
	FirstName string  `json:"first_name" db:"first_name"`
	LastName  *string `json:"last_name" db:"last_name"`
	Email     *string `json:"email" db:"email"`
	Phone     *string `json:"phone" db:"phone"`
}

type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// UpdateContactRequest is a full replacement of the editable fields, so the
// same rules as creation apply (first_name is required even on update).
type UpdateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// SearchContactRequest is bound from query parameters. Page and Size are
// pre-filled with their defaults before binding.
type SearchContactRequest struct {
	Name  string `query:"name"`
	Email string `query:"email"`
	Phone string `query:"phone"`
	Page  int    `query:"page" validate:"min=1"`
	Size  int    `query:"size" validate:"min=1,max=100"`
}
