package errander

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidErranderID     = errors.New("invalid errander id")
	ErrInvalidStatus         = errors.New("invalid errander status")
	ErrInvalidPhone          = errors.New("invalid phone number")

	ErrErranderNotFound = errors.New("errander not found")
	ErrAlreadyApplied   = errors.New("errander application already exists")
)
