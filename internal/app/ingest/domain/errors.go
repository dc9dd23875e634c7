package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrMalformedDate  = errors.New("value cannot be interpreted as a date")
	ErrMalformedValue = errors.New("value cannot be interpreted as a number")
	ErrMissingColumn  = errors.New("required column missing from CSV header")
)
