package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Showtime is a scheduled screening. It is immutable after creation; the
// reservation core only reads it. Price, when set, overrides the per-category
// seat prices (see SeatPrice).
type Showtime struct {
	ID        string
	MovieID   string
	TheatreID string
	StartsAt  time.Time
	Price     *decimal.Decimal
}

type ShowtimeRepository interface {
	GetByID(ctx context.Context, id string) (*Showtime, error)
	GetByMovieID(ctx context.Context, movieID string) ([]*Showtime, error)
}
