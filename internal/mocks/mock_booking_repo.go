package mocks

import (
	"context"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) HasBookingForMovie(ctx context.Context, userID int, movieID string) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) GetSummariesByUserID(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	args := m.Called(ctx, userID, pagination)

	var summaries []domain.BookingSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.BookingSummary)
	}

	var metadata *domain.Metadata
	if args.Get(1) != nil {
		metadata = args.Get(1).(*domain.Metadata)
	}

	return summaries, metadata, args.Error(2)
}

func (m *MockBookingRepo) GetByIDAndUserID(
	ctx context.Context,
	bookingID uuid.UUID,
	userID int) (*domain.BookingDetail, error) {

	args := m.Called(ctx, bookingID, userID)

	var detail *domain.BookingDetail
	if args.Get(0) != nil {
		detail = args.Get(0).(*domain.BookingDetail)
	}

	return detail, args.Error(1)
}
