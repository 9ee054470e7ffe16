package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// Fallback per-seat prices used when a showtime carries no explicit price.
	StandardSeatPrice = decimal.NewFromInt(12)
	VIPSeatPrice      = decimal.NewFromInt(25)

	// BookingFee is added once per booking with a non-empty seat set.
	BookingFee = decimal.NewFromInt(2)
)

// Booking is an immutable record of a user's successful claim over a set of
// seats for a showtime. It is created exactly once, atomically with the
// seat-status transition, and never mutated afterwards.
type Booking struct {
	ID          uuid.UUID
	UserID      int
	MovieID     string
	ShowtimeID  string
	SeatLabels  []string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

type BookingSummary struct {
	ID          uuid.UUID
	MovieID     string
	MovieTitle  string
	PosterURL   string
	TheatreName string
	ShowtimeID  string
	StartsAt    time.Time
	SeatLabels  []string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

type BookingDetail struct {
	BookingSummary
	TheatreLocation string
	Seats           []Seat
}

// SeatPrice resolves the price of a single seat. An explicit showtime price
// wins; otherwise the category fallback applies.
func SeatPrice(category SeatCategory, showtimePrice *decimal.Decimal) decimal.Decimal {
	if showtimePrice != nil {
		return *showtimePrice
	}

	if category == SeatVIP {
		return VIPSeatPrice
	}

	return StandardSeatPrice
}

// TotalAmount prices a seat selection: the sum of per-seat prices plus the
// booking fee. An empty selection costs nothing.
func TotalAmount(seats []Seat, showtimePrice *decimal.Decimal) decimal.Decimal {
	if len(seats) == 0 {
		return decimal.Zero
	}

	total := BookingFee
	for _, seat := range seats {
		total = total.Add(SeatPrice(seat.Category, showtimePrice))
	}

	return total
}

type BookingRepository interface {
	// Create persists the booking and transitions every seat in SeatLabels
	// from available to booked as one atomic unit. It fails with
	// ErrDuplicateBooking if the user already holds a booking for the movie,
	// or with SeatsUnavailableError naming the contested seats. On any
	// failure no rows are written.
	Create(ctx context.Context, booking *Booking) error
	// HasBookingForMovie reports whether the user already holds a booking
	// for the movie, regardless of showtime.
	HasBookingForMovie(ctx context.Context, userID int, movieID string) (bool, error)
	GetSummariesByUserID(ctx context.Context, userID int, pagination Pagination) ([]BookingSummary, *Metadata, error)
	GetByIDAndUserID(ctx context.Context, bookingID uuid.UUID, userID int) (*BookingDetail, error)
}
