package models

// Address belongs to exactly one contact. Its existence is always resolved
// against the (contact_id, id) pair, never by id alone.
type Address struct {
	ID         int     `json:"id" db:"id"`
	ContactID  int     `json:"-" db:"contact_id"`
	Street     *string `json:"street" db:"street"`
	City       *string `json:"city" db:"city"`
	Province   *string `json:"province" db:"province"`
	Country    string  `json:"country" db:"country"`
	PostalCode string  `json:"postal_code" db:"postal_code"`
}

type CreateAddressRequest struct {
	Street     *string `json:"street,omitempty" validate:"omitempty,max=255"`
	City       *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Province   *string `json:"province,omitempty" validate:"omitempty,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=10"`
}

// UpdateAddressRequest replaces all editable fields; country and postal_code
// stay mandatory on update.
type UpdateAddressRequest struct {
	Street     *string `json:"street,omitempty" validate:"omitempty,max=255"`
	City       *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Province   *string `json:"province,omitempty" validate:"omitempty,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=10"`
}
