package mocks

import (
	"context"

	"github.com/screenline/cinebook/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTheatreRepo struct {
	mock.Mock
}

func (m *MockTheatreRepo) GetAll(ctx context.Context) ([]domain.Theatre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Theatre), args.Error(1)
}

func (m *MockTheatreRepo) GetById(ctx context.Context, id int) (*domain.Theatre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theatre), args.Error(1)
}

func (m *MockTheatreRepo) Create(ctx context.Context, theatre *domain.Theatre) error {
	args := m.Called(ctx, theatre)
	return args.Error(0)
}

func (m *MockTheatreRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
