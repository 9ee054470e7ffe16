package repository

import (
	"context"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTheatreRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheatreRepository(db *pgxpool.Pool) *PostgresTheatreRepository {
	return &PostgresTheatreRepository{
		db: db,
	}
}

func (p *PostgresTheatreRepository) GetAll(ctx context.Context) ([]*domain.Theatre, error) {
	query := `
		SELECT id, name, location, amenities, capacity, standard_price, vip_price,
			contact_info, image_url, rating, total_screens
		FROM theatres
		ORDER BY name
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theatres := []*domain.Theatre{}

	for rows.Next() {
		var theatre domain.Theatre

		err := rows.Scan(
			&theatre.ID,
			&theatre.Name,
			&theatre.Location,
			&theatre.Amenities,
			&theatre.Capacity,
			&theatre.StandardPrice,
			&theatre.VIPPrice,
			&theatre.ContactInfo,
			&theatre.ImageURL,
			&theatre.Rating,
			&theatre.TotalScreens,
		)

		if err != nil {
			return nil, err
		}

		theatres = append(theatres, &theatre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theatres, nil
}
