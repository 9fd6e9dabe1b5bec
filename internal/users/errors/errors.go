package errors

import "errors"

var (
	ErrNotFound = errors.New("user not found")

	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateContact  = errors.New("contact already registered")
	ErrDuplicateUserName = errors.New("user name already registered")
)
