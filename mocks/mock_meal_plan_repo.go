package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"forkful/internal/domain"
)

// MockMealPlanRepo is a mock implementation of port.MealPlanRepository.
type MockMealPlanRepo struct {
	mock.Mock
}

func (m *MockMealPlanRepo) Create(ctx context.Context, plan *domain.MealPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockMealPlanRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MealPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepo) List(ctx context.Context, offset, limit int) ([]domain.MealPlan, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.MealPlan), args.Int(1), args.Error(2)
}

func (m *MockMealPlanRepo) AddEntry(ctx context.Context, entry *domain.MealPlanEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMealPlanRepo) ListEntries(ctx context.Context, planID uuid.UUID) ([]domain.MealPlanEntry, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MealPlanEntry), args.Error(1)
}

func (m *MockMealPlanRepo) RemoveEntry(ctx context.Context, planID, entryID uuid.UUID) error {
	args := m.Called(ctx, planID, entryID)
	return args.Error(0)
}

func (m *MockMealPlanRepo) RemoveEntriesByRecipe(ctx context.Context, recipeID uuid.UUID) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

func (m *MockMealPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
