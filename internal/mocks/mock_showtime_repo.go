package mocks

import (
	"context"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockShowtimeRepo struct {
	mock.Mock
}

func (m *MockShowtimeRepo) GetByID(ctx context.Context, id string) (*domain.Showtime, error) {
	args := m.Called(ctx, id)

	var showtime *domain.Showtime
	if args.Get(0) != nil {
		showtime = args.Get(0).(*domain.Showtime)
	}

	return showtime, args.Error(1)
}

func (m *MockShowtimeRepo) GetByMovieID(ctx context.Context, movieID string) ([]*domain.Showtime, error) {
	args := m.Called(ctx, movieID)

	var showtimes []*domain.Showtime
	if args.Get(0) != nil {
		showtimes = args.Get(0).([]*domain.Showtime)
	}

	return showtimes, args.Error(1)
}
