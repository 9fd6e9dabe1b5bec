package errors

import "errors"

var ErrCarNotFound = errors.New("car not found")
