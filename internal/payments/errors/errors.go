package errors

import "errors"

var (
	ErrNotFound        = errors.New("payment not found")
	ErrBookingNotFound = errors.New("booking not found")
)
