package mocks

import (
	"context"

	"github.com/screenline/cinebook/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatMapCache struct {
	mock.Mock
}

func (m *MockSeatMapCache) Get(ctx context.Context, showtimeID int) (*domain.SeatMap, int64, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.SeatMap), args.Get(1).(int64), args.Error(2)
}

func (m *MockSeatMapCache) Set(ctx context.Context, seatMap *domain.SeatMap, generation int64) error {
	args := m.Called(ctx, seatMap, generation)
	return args.Error(0)
}

func (m *MockSeatMapCache) Invalidate(ctx context.Context, showtimeID int) error {
	args := m.Called(ctx, showtimeID)
	return args.Error(0)
}
