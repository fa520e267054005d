package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")
	ErrInvalidStatus         = errors.New("invalid delivery status")
	ErrInvalidFee            = errors.New("delivery fee must be positive")

	ErrMissingErrander   = errors.New("transport status requires an assigned errander")
	ErrMissingFee        = errors.New("transport status requires a positive delivery fee")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrAlreadyTerminal   = errors.New("delivery is in a terminal status")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrErranderNotFound = errors.New("errander not found")
)
