package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"forkful/internal/domain"
)

// MockImportJobRepo is a mock implementation of port.ImportJobRepository.
type MockImportJobRepo struct {
	mock.Mock
}

func (m *MockImportJobRepo) Create(ctx context.Context, job *domain.ImportJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockImportJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportJob), args.Error(1)
}

func (m *MockImportJobRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.ImportJob, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportJob), args.Error(1)
}

func (m *MockImportJobRepo) Update(ctx context.Context, job *domain.ImportJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockImportJobRepo) List(ctx context.Context, offset, limit int) ([]domain.ImportJob, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ImportJob), args.Int(1), args.Error(2)
}
