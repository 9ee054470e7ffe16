package repository

import (
	"context"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetSeatsByShowtime(ctx context.Context, showtimeID string) (*domain.ShowtimeSeatMap, error) {
	query := `
		SELECT
			sh.id,
			sh.movie_id,
			m.title,
			t.id,
			t.name,
			sh.price,
			se.label,
			se.seat_row,
			se.seat_col,
			se.category,
			se.status,
			se.booked_by,
			se.booking_id
		FROM showtimes sh
		JOIN movies m ON sh.movie_id = m.id
		JOIN theatres t ON sh.theatre_id = t.id
		JOIN seats se ON se.showtime_id = sh.id
		WHERE sh.id = $1
		ORDER BY se.seat_row, se.seat_col
	`

	rows, err := p.db.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seatMap domain.ShowtimeSeatMap

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&seatMap.ShowtimeID,
			&seatMap.MovieID,
			&seatMap.MovieTitle,
			&seatMap.TheatreID,
			&seatMap.TheatreName,
			&seatMap.Price,
			&seat.Label,
			&seat.Row,
			&seat.Col,
			&seat.Category,
			&seat.Status,
			&seat.BookedBy,
			&seat.BookingID,
		)
		if err != nil {
			return nil, err
		}

		seat.ShowtimeID = seatMap.ShowtimeID
		seatMap.Seats = append(seatMap.Seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(seatMap.Seats) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return &seatMap, nil
}

func (p *PostgresSeatRepository) GetSeatsByShowtimeAndLabels(
	ctx context.Context,
	showtimeID string,
	labels []string) ([]domain.Seat, error) {

	query := `
		SELECT showtime_id, label, seat_row, seat_col, category, status, booked_by, booking_id
		FROM seats
		WHERE showtime_id = $1 AND label = ANY($2)
		ORDER BY seat_row, seat_col
	`

	rows, err := p.db.Query(ctx, query, showtimeID, labels)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := []domain.Seat{}

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&seat.ShowtimeID,
			&seat.Label,
			&seat.Row,
			&seat.Col,
			&seat.Category,
			&seat.Status,
			&seat.BookedBy,
			&seat.BookingID,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
