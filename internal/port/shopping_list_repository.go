package port

import (
	"context"

	"github.com/google/uuid"

	"forkful/internal/domain"
)

// ShoppingListRepository defines the contract for shopping list persistence.
type ShoppingListRepository interface {
	Create(ctx context.Context, list *domain.ShoppingList, items []domain.ShoppingListItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error)
	List(ctx context.Context, offset, limit int) ([]domain.ShoppingList, int, error)
	ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error)
	SetItemChecked(ctx context.Context, listID, itemID uuid.UUID, checked bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
