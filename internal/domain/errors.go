package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every engine operation that fails does so with exactly one of
// these at the root of its error chain, so callers can branch with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrState      = errors.New("invalid state")
)

// Common wrapped errors shared across services and handlers.
var (
	ErrVehicleNotFound  = fmt.Errorf("%w: vehicle", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("%w: customer", ErrNotFound)
	ErrRentalNotFound   = fmt.Errorf("%w: rental", ErrNotFound)
	ErrRequestNotFound  = fmt.Errorf("%w: rental request", ErrNotFound)

	ErrInvalidInterval = fmt.Errorf("%w: start date must be before end date", ErrValidation)
	ErrMissingConsent  = fmt.Errorf("%w: digital consent is required", ErrValidation)

	ErrVehicleUnavailable   = fmt.Errorf("%w: vehicle is not available for the requested interval", ErrConflict)
	ErrRequestResolved      = fmt.Errorf("%w: rental request is already resolved", ErrConflict)
	ErrVehicleHasRentals    = fmt.Errorf("%w: vehicle has pending or active rentals", ErrState)
	ErrIllegalTransition    = fmt.Errorf("%w: illegal status transition", ErrState)
	ErrRentalNotUpdatable   = fmt.Errorf("%w: only pending rentals can be rescheduled", ErrState)
	ErrRentalAlreadyClosed  = fmt.Errorf("%w: rental is in a terminal status", ErrState)
	ErrInvalidInitialStatus = fmt.Errorf("%w: rentals must start as pending or active", ErrValidation)
)
