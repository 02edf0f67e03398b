package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrBookingNotFound     = errors.New("booking not found")
)

var (
	ErrValidation = errors.New("validation error")

	ErrMissingField       = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidDestination = fmt.Errorf("%w: invalid destinationId", ErrValidation)
)
