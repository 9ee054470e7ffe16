// Package reservation implements the coordinator that turns a validated seat
// selection into a committed booking. Seat selection itself is advisory: no
// lock is held while a user is browsing, so the only point of mutual
// exclusion is the atomic compare-and-book commit in the booking repository.
package reservation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultMaxRetries      = 3
	defaultInitialInterval = 50 * time.Millisecond
)

// Request is one reservation attempt as submitted by a caller.
type Request struct {
	UserID     int
	MovieID    string
	ShowtimeID string
	SeatLabels []string
}

type Coordinator struct {
	bookingRepo  domain.BookingRepository
	seatRepo     domain.SeatRepository
	showtimeRepo domain.ShowtimeRepository
	logger       *slog.Logger

	maxRetries      uint64
	initialInterval time.Duration
}

func NewCoordinator(
	bookingRepo domain.BookingRepository,
	seatRepo domain.SeatRepository,
	showtimeRepo domain.ShowtimeRepository,
	logger *slog.Logger) *Coordinator {

	return &Coordinator{
		bookingRepo:     bookingRepo,
		seatRepo:        seatRepo,
		showtimeRepo:    showtimeRepo,
		logger:          logger,
		maxRetries:      defaultMaxRetries,
		initialInterval: defaultInitialInterval,
	}
}

// Reserve runs one reservation attempt end to end: request validation,
// duplicate-booking guard, pricing, and the atomic commit. Transient
// infrastructure failures are retried with exponential backoff; rejections
// (duplicate booking, lost seat race, unknown seats) are permanent and
// surface immediately. On any failure no booking and no seat transition is
// persisted.
func (c *Coordinator) Reserve(ctx context.Context, req Request) (*domain.Booking, error) {
	seats, showtime, err := c.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	// Fast-path guard. The same rule is enforced again inside the commit
	// transaction, so two racing requests cannot both slip past this check.
	exists, err := c.bookingRepo.HasBookingForMovie(ctx, req.UserID, req.MovieID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateBooking
	}

	booking := &domain.Booking{
		ID:          uuid.New(),
		UserID:      req.UserID,
		MovieID:     req.MovieID,
		ShowtimeID:  req.ShowtimeID,
		SeatLabels:  req.SeatLabels,
		TotalAmount: domain.TotalAmount(seats, showtime.Price),
	}

	err = c.commitWithRetry(ctx, booking)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (c *Coordinator) validate(ctx context.Context, req Request) ([]domain.Seat, *domain.Showtime, error) {
	if req.UserID == 0 {
		return nil, nil, domain.ErrAuthenticationRequired
	}

	if len(req.SeatLabels) == 0 {
		return nil, nil, domain.ErrEmptySeatSelection
	}

	showtime, err := c.showtimeRepo.GetByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, nil, err
	}

	if showtime.MovieID != req.MovieID {
		return nil, nil, domain.ErrShowtimeMismatch
	}

	seats, err := c.seatRepo.GetSeatsByShowtimeAndLabels(ctx, req.ShowtimeID, req.SeatLabels)
	if err != nil {
		return nil, nil, err
	}

	if len(seats) != len(req.SeatLabels) {
		known := make(map[string]bool, len(seats))
		for _, seat := range seats {
			known[seat.Label] = true
		}

		var missing []string
		for _, label := range req.SeatLabels {
			if !known[label] {
				missing = append(missing, label)
			}
		}

		return nil, nil, domain.UnknownSeatsError{SeatLabels: missing}
	}

	return seats, showtime, nil
}

// commitWithRetry drives the atomic commit, retrying the whole attempt on
// transient failures. Rejections carry their own meaning to the caller and
// must not be retried: a stale seat set stays stale.
func (c *Coordinator) commitWithRetry(ctx context.Context, booking *domain.Booking) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval

	attempt := 0

	operation := func() error {
		attempt++

		err := c.bookingRepo.Create(ctx, booking)
		if err != nil && !isTransient(err) {
			return backoff.Permanent(err)
		}

		return err
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx))
	if err == nil {
		return nil
	}

	if isTransient(err) {
		c.logger.Error(
			"booking commit failed after retries",
			"booking_id", booking.ID,
			"showtime_id", booking.ShowtimeID,
			"attempts", attempt,
			"error", err,
		)

		return domain.ErrTransactionFailed
	}

	return err
}

// isTransient reports whether an error is an infrastructure failure worth
// retrying, as opposed to a rejection of the request itself.
func isTransient(err error) bool {
	var seatsUnavailable domain.SeatsUnavailableError
	var unknownSeats domain.UnknownSeatsError

	switch {
	case errors.Is(err, domain.ErrDuplicateBooking),
		errors.As(err, &seatsUnavailable),
		errors.As(err, &unknownSeats),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}

	return true
}
