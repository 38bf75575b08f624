// Package common defines the sentinel errors shared by the store, the services
// and the HTTP layer. Callers match them with errors.Is; the parent errors
// (ErrValidation, ErrConflict, ErrNotFound, ErrUnauthorized) decide the HTTP
// status, the specific ones decide the message.
package common

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")

	// validation
	ErrInvalidBody        = fmt.Errorf("%w: invalid request body", ErrValidation)
	ErrMissingFields      = fmt.Errorf("%w: all fields are required", ErrValidation)
	ErrPasswordTooShort   = fmt.Errorf("%w: password too short", ErrValidation)
	ErrPasswordTooLong    = fmt.Errorf("%w: password too long", ErrValidation)
	ErrMissingCredentials = fmt.Errorf("%w: email and password are required", ErrValidation)
	ErrMissingComponents  = fmt.Errorf("%w: all components are required", ErrValidation)
	ErrNegativePrice      = fmt.Errorf("%w: component price is negative", ErrValidation)

	// auth
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrMissingToken       = fmt.Errorf("%w: no token provided", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthorized)

	// conflict
	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrConflict)

	// lookup
	ErrProductNotFound       = fmt.Errorf("%w: product", ErrNotFound)
	ErrComponentTypeNotFound = fmt.Errorf("%w: component type", ErrNotFound)
)
