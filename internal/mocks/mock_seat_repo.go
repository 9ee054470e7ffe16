package mocks

import (
	"context"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatRepo struct {
	mock.Mock
}

func (m *MockSeatRepo) GetSeatsByShowtime(ctx context.Context, showtimeID string) (*domain.ShowtimeSeatMap, error) {
	args := m.Called(ctx, showtimeID)

	var seatMap *domain.ShowtimeSeatMap
	if args.Get(0) != nil {
		seatMap = args.Get(0).(*domain.ShowtimeSeatMap)
	}

	return seatMap, args.Error(1)
}

func (m *MockSeatRepo) GetSeatsByShowtimeAndLabels(
	ctx context.Context,
	showtimeID string,
	labels []string) ([]domain.Seat, error) {

	args := m.Called(ctx, showtimeID, labels)

	var seats []domain.Seat
	if args.Get(0) != nil {
		seats = args.Get(0).([]domain.Seat)
	}

	return seats, args.Error(1)
}
