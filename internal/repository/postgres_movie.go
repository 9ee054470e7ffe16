package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, title, overview, poster_url, release_date, rating, status
		FROM movies
		WHERE ((to_tsvector('english', title) @@ plainto_tsquery('english', $1)
			OR to_tsvector('english', overview) @@ plainto_tsquery('english', $1))
			OR $1 = '')
		ORDER BY %s %s
		LIMIT $2 OFFSET $3`, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(ctx, query, filters.Term, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Overview,
			&movie.PosterURL,
			&movie.ReleaseDate,
			&movie.Rating,
			&movie.Status,
		)

		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	query := `
		SELECT id, title, overview, poster_url, backdrop_url, release_date, rating, trailer_key, status
		FROM movies
		WHERE id = $1
	`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Overview,
		&movie.PosterURL,
		&movie.BackdropURL,
		&movie.ReleaseDate,
		&movie.Rating,
		&movie.TrailerKey,
		&movie.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}
