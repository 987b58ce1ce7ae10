package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"forkful/internal/domain"
)

// MockRecipeRepo is a mock implementation of port.RecipeRepository.
type MockRecipeRepo struct {
	mock.Mock
}

func (m *MockRecipeRepo) Create(ctx context.Context, recipe *domain.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Recipe, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepo) List(ctx context.Context, offset, limit int) ([]domain.Recipe, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Recipe), args.Int(1), args.Error(2)
}

func (m *MockRecipeRepo) ListBySourceKind(ctx context.Context, kind domain.SourceKind, offset, limit int) ([]domain.Recipe, int, error) {
	args := m.Called(ctx, kind, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Recipe), args.Int(1), args.Error(2)
}

func (m *MockRecipeRepo) ListFavorites(ctx context.Context, offset, limit int) ([]domain.Recipe, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Recipe), args.Int(1), args.Error(2)
}

func (m *MockRecipeRepo) SearchByTag(ctx context.Context, tag string, offset, limit int) ([]domain.Recipe, int, error) {
	args := m.Called(ctx, tag, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Recipe), args.Int(1), args.Error(2)
}

func (m *MockRecipeRepo) Update(ctx context.Context, recipe *domain.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepo) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	args := m.Called(ctx, id, favorite)
	return args.Error(0)
}

func (m *MockRecipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
