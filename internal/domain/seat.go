package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

type SeatCategory string

const (
	SeatStandard SeatCategory = "standard"
	SeatVIP      SeatCategory = "vip"
)

// Seat is one bookable unit of a showtime's seat map, identified by its
// human-readable label (row letter + column number, e.g. "A1").
type Seat struct {
	ShowtimeID string
	Label      string
	Row        string
	Col        int
	Category   SeatCategory
	Status     SeatStatus
	BookedBy   *int
	BookingID  *uuid.UUID
}

func (s Seat) Available() bool {
	return s.Status == SeatAvailable
}

// ShowtimeSeatMap carries the full ordered seat grid of a showtime together
// with the display fields a seat-map page needs.
type ShowtimeSeatMap struct {
	ShowtimeID  string
	MovieID     string
	MovieTitle  string
	TheatreID   string
	TheatreName string
	Price       *decimal.Decimal
	Seats       []Seat
}

// CategoryForRow derives a seat's price category from its row letter.
// The front row is sold as VIP, everything behind it as standard.
func CategoryForRow(row string) SeatCategory {
	if row == "A" {
		return SeatVIP
	}

	return SeatStandard
}

// SeatLabel composes the human-readable label for a grid position.
func SeatLabel(row string, col int) string {
	return fmt.Sprintf("%s%d", row, col)
}

type SeatRepository interface {
	// GetSeatsByShowtime returns the showtime's seats ordered by row then
	// column. The result reflects committed state only and is advisory for
	// display purposes; bookings re-validate at commit time.
	GetSeatsByShowtime(ctx context.Context, showtimeID string) (*ShowtimeSeatMap, error)
	// GetSeatsByShowtimeAndLabels returns the subset of seats matching the
	// given labels. Labels missing from the result do not exist on the map.
	GetSeatsByShowtimeAndLabels(ctx context.Context, showtimeID string, labels []string) ([]Seat, error)
}
