// File: services/booking/errors.go
package booking

import "errors"

// ErrSessionNotFound means the quoted session expired or never existed; the
// guest re-quotes and starts over.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrReservationNotFound is returned for cancel/lookup of an unknown id.
var ErrReservationNotFound = errors.New("reservation not found")
