package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"forkful/internal/domain"
)

// MockShoppingListRepo is a mock implementation of port.ShoppingListRepository.
type MockShoppingListRepo struct {
	mock.Mock
}

func (m *MockShoppingListRepo) Create(ctx context.Context, list *domain.ShoppingList, items []domain.ShoppingListItem) error {
	args := m.Called(ctx, list, items)
	return args.Error(0)
}

func (m *MockShoppingListRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingListRepo) List(ctx context.Context, offset, limit int) ([]domain.ShoppingList, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ShoppingList), args.Int(1), args.Error(2)
}

func (m *MockShoppingListRepo) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListRepo) SetItemChecked(ctx context.Context, listID, itemID uuid.UUID, checked bool) error {
	args := m.Called(ctx, listID, itemID, checked)
	return args.Error(0)
}

func (m *MockShoppingListRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
