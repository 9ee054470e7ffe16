package repository

import (
	"context"
	"errors"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create commits a booking as one transaction: the booking row (which also
// enforces the one-booking-per-user-per-movie rule through a unique index),
// the compare-and-book transition of every requested seat, and the
// booking-to-seat mapping rows. Either all of it applies or none of it does.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (id, user_id, movie_id, showtime_id, total_amount)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			booking.ID,
			booking.UserID,
			booking.MovieID,
			booking.ShowtimeID,
			booking.TotalAmount).Scan(&booking.CreatedAt)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrDuplicateBooking
			}

			return err
		}

		err = compareAndBookSeats(ctx, tx, booking)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(booking.SeatLabels))
		for _, label := range booking.SeatLabels {
			rows = append(rows, []any{
				booking.ID,
				booking.ShowtimeID,
				label,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "showtime_id", "seat_label"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}

// compareAndBookSeats is the multi-key conditional write at the heart of the
// reservation design: every requested seat moves from available to booked, or
// the transaction aborts. The conditional UPDATE takes row locks, so attempts
// over overlapping seat sets serialize here while disjoint sets never block
// each other. When it loses a race it reads back exactly the seats that were
// no longer available so the caller can report them.
func compareAndBookSeats(ctx context.Context, tx pgx.Tx, booking *domain.Booking) error {
	query := `
		UPDATE seats
		SET status = 'booked', booked_by = $3, booking_id = $4
		WHERE showtime_id = $1 AND label = ANY($2) AND status = 'available'
	`

	tag, err := tx.Exec(ctx, query, booking.ShowtimeID, booking.SeatLabels, booking.UserID, booking.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == int64(len(booking.SeatLabels)) {
		return nil
	}

	conflicting, missing, err := classifyFailedSeats(ctx, tx, booking)
	if err != nil {
		return err
	}

	if len(missing) > 0 {
		return domain.UnknownSeatsError{SeatLabels: missing}
	}

	return domain.SeatsUnavailableError{SeatLabels: conflicting}
}

// classifyFailedSeats splits the requested labels into ones booked by someone
// else and ones that do not exist on the showtime's map. Seats the current
// transaction's UPDATE already claimed read back with our own booking id and
// are not conflicts.
func classifyFailedSeats(
	ctx context.Context,
	tx pgx.Tx,
	booking *domain.Booking) (conflicting, missing []string, err error) {

	query := `
		SELECT label, status, booking_id
		FROM seats
		WHERE showtime_id = $1 AND label = ANY($2)
	`

	rows, err := tx.Query(ctx, query, booking.ShowtimeID, booking.SeatLabels)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	type seatState struct {
		status    domain.SeatStatus
		bookingID *uuid.UUID
	}

	found := make(map[string]seatState, len(booking.SeatLabels))

	for rows.Next() {
		var label string
		var state seatState

		if err := rows.Scan(&label, &state.status, &state.bookingID); err != nil {
			return nil, nil, err
		}

		found[label] = state
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	for _, label := range booking.SeatLabels {
		state, ok := found[label]
		switch {
		case !ok:
			missing = append(missing, label)
		case state.status == domain.SeatBooked && (state.bookingID == nil || *state.bookingID != booking.ID):
			conflicting = append(conflicting, label)
		}
	}

	return conflicting, missing, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresBookingRepository) HasBookingForMovie(ctx context.Context, userID int, movieID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings WHERE user_id = $1 AND movie_id = $2
		)
	`

	var exists bool

	err := p.db.QueryRow(ctx, query, userID, movieID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresBookingRepository) GetSummariesByUserID(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			count(*) OVER(),
			b.id,
			b.movie_id,
			m.title,
			m.poster_url,
			t.name,
			b.showtime_id,
			sh.starts_at,
			array_agg(bs.seat_label ORDER BY bs.seat_label),
			b.total_amount,
			b.created_at
		FROM bookings b
		JOIN movies m ON b.movie_id = m.id
		JOIN showtimes sh ON b.showtime_id = sh.id
		JOIN theatres t ON sh.theatre_id = t.id
		JOIN booking_seats bs ON bs.booking_id = b.id
		WHERE b.user_id = $1
		GROUP BY b.id, m.title, m.poster_url, t.name, b.showtime_id, sh.starts_at
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.ID,
			&booking.MovieID,
			&booking.MovieTitle,
			&booking.PosterURL,
			&booking.TheatreName,
			&booking.ShowtimeID,
			&booking.StartsAt,
			&booking.SeatLabels,
			&booking.TotalAmount,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

func (p *PostgresBookingRepository) GetByIDAndUserID(
	ctx context.Context,
	bookingID uuid.UUID,
	userID int) (*domain.BookingDetail, error) {

	query := `
		SELECT
			b.id,
			b.movie_id,
			m.title,
			m.poster_url,
			t.name,
			t.location,
			b.showtime_id,
			sh.starts_at,
			b.total_amount,
			b.created_at
		FROM bookings b
		JOIN movies m ON b.movie_id = m.id
		JOIN showtimes sh ON b.showtime_id = sh.id
		JOIN theatres t ON sh.theatre_id = t.id
		WHERE b.id = $1 AND b.user_id = $2
	`

	var detail domain.BookingDetail

	err := p.db.QueryRow(ctx, query, bookingID, userID).Scan(
		&detail.ID,
		&detail.MovieID,
		&detail.MovieTitle,
		&detail.PosterURL,
		&detail.TheatreName,
		&detail.TheatreLocation,
		&detail.ShowtimeID,
		&detail.StartsAt,
		&detail.TotalAmount,
		&detail.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	seats, err := p.retrieveBookingSeats(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	detail.Seats = seats
	for _, seat := range seats {
		detail.SeatLabels = append(detail.SeatLabels, seat.Label)
	}

	return &detail, nil
}

func (p *PostgresBookingRepository) retrieveBookingSeats(ctx context.Context, bookingID uuid.UUID) ([]domain.Seat, error) {
	query := `
		SELECT s.showtime_id, s.label, s.seat_row, s.seat_col, s.category, s.status, s.booked_by, s.booking_id
		FROM booking_seats bs
		JOIN seats s ON s.showtime_id = bs.showtime_id AND s.label = bs.seat_label
		WHERE bs.booking_id = $1
		ORDER BY s.seat_row, s.seat_col
	`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(
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
