package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrInvalidWindow = errors.New("report window must be at least one day")
	ErrRunNotFound   = errors.New("report run not found")
)
