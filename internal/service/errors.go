// Package service implements the transactional core of the booking
// platform: the booking transaction manager and the game-membership
// manager.  Failures are classified with sentinel errors so handlers
// can translate them to HTTP statuses without inspecting strings.
package service

import (
	"errors"
	"fmt"
)

// Error taxonomy.  Handlers map these with errors.Is: validation and
// payment errors are client-fixable (400), not-found is 404, forbidden
// is 403, conflict is 409.  Anything unwrapped is an internal error:
// logged with detail server side, reported generically to the caller.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrPayment    = errors.New("payment verification failed")
	ErrForbidden  = errors.New("forbidden")
)

// Wrapped specifics.  Each carries the user-facing message while still
// matching its base sentinel under errors.Is.
var (
	ErrSportNotOffered = fmt.Errorf("%w: sport not available at this venue", ErrNotFound)
	ErrSlotTaken       = fmt.Errorf("%w: slot is already booked for the selected time", ErrConflict)
	ErrAlreadyJoined   = fmt.Errorf("%w: join request already exists for this game", ErrConflict)
	ErrAlreadyPaid     = fmt.Errorf("%w: booking is already paid", ErrConflict)
)
