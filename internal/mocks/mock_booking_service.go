package mocks

import (
	"context"

	"github.com/screenline/cinebook/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Reserve(ctx context.Context, showtimeID, userID int, seats []int) (*domain.Booking, error) {
	args := m.Called(ctx, showtimeID, userID, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, bookingID, userID int) error {
	args := m.Called(ctx, bookingID, userID)
	return args.Error(0)
}

func (m *MockBookingService) CancelPast(ctx context.Context, userID int, bookingIDs []int) (int, error) {
	args := m.Called(ctx, userID, bookingIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingService) SeatMap(ctx context.Context, showtimeID int) (*domain.SeatMap, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeatMap), args.Error(1)
}

func (m *MockBookingService) UpdateShowtime(ctx context.Context, showtime *domain.Showtime) error {
	args := m.Called(ctx, showtime)
	return args.Error(0)
}

func (m *MockBookingService) Forget(ctx context.Context, showtimeID int) {
	m.Called(ctx, showtimeID)
}
