package errors

import "errors"

var ErrNotFound = errors.New("travel package not found")
