package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCustomerID     = errors.New("invalid customer id")

	ErrCustomerNotFound       = errors.New("customer not found")
	ErrPhoneAlreadyRegistered = errors.New("phone already registered")
)
