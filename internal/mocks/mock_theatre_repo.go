package mocks

import (
	"context"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTheatreRepo struct {
	mock.Mock
}

func (m *MockTheatreRepo) GetAll(ctx context.Context) ([]*domain.Theatre, error) {
	args := m.Called(ctx)

	var theatres []*domain.Theatre
	if args.Get(0) != nil {
		theatres = args.Get(0).([]*domain.Theatre)
	}

	return theatres, args.Error(1)
}
