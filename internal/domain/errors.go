package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound         = errors.New("record not found")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrUserAlreadyExists      = errors.New("user already exists")
	ErrDuplicateBooking       = errors.New("user already has a booking for this movie")
	ErrTransactionFailed      = errors.New("booking could not be committed")
	ErrShowtimeMismatch       = errors.New("showtime does not belong to the given movie")
	ErrEmptySeatSelection     = errors.New("at least one seat must be selected")
)

// SeatsUnavailableError reports the exact set of seats that were no longer
// available when a booking attempt reached its commit step.
type SeatsUnavailableError struct {
	SeatLabels []string
}

func (e SeatsUnavailableError) Error() string {
	return fmt.Sprintf("seat(s) no longer available: %s", strings.Join(e.SeatLabels, ", "))
}

// UnknownSeatsError reports requested seat labels that do not exist on the
// showtime's seat map.
type UnknownSeatsError struct {
	SeatLabels []string
}

func (e UnknownSeatsError) Error() string {
	return fmt.Sprintf("unknown seat(s) for showtime: %s", strings.Join(e.SeatLabels, ", "))
}
