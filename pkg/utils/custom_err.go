package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingDestination = errors.New("destination is required")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrTripNotFound       = errors.New("trip not found")
	ErrNotTripOwner       = errors.New("not the trip owner")
	ErrDatabaseError      = errors.New("database error")
)
