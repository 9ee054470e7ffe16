package domain

import (
	"context"
	"strings"
	"time"
)

type Movie struct {
	ID          string
	Title       string
	Overview    string
	PosterURL   string
	BackdropURL string
	ReleaseDate time.Time
	Rating      float64
	TrailerKey  string
	Status      string
}

type MovieFilters struct {
	Page     int
	PageSize int
	Term     string
	Sort     string
}

func (f MovieFilters) SortColumn() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f MovieFilters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (f MovieFilters) Limit() int {
	return f.PageSize
}

func (f MovieFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	GetByID(ctx context.Context, id string) (*Movie, error)
}
