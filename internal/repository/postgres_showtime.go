package repository

import (
	"context"
	"errors"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetByID(ctx context.Context, id string) (*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, theatre_id, starts_at, price
		FROM showtimes
		WHERE id = $1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.TheatreID,
		&showtime.StartsAt,
		&showtime.Price,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetByMovieID(ctx context.Context, movieID string) ([]*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, theatre_id, starts_at, price
		FROM showtimes
		WHERE movie_id = $1
		ORDER BY starts_at
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := []*domain.Showtime{}

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.TheatreID,
			&showtime.StartsAt,
			&showtime.Price,
		)

		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, &showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}
