package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"forkful/internal/consolidate"
	"forkful/internal/domain"
	"forkful/internal/port"
)

// CreateShoppingListInput is the DTO for building a consolidated list.
type CreateShoppingListInput struct {
	Name      string      `json:"name" binding:"required"`
	RecipeIDs []uuid.UUID `json:"recipe_ids" binding:"required,min=1"`
}

// ShoppingListDetail bundles a list with its items.
type ShoppingListDetail struct {
	List  *domain.ShoppingList      `json:"list"`
	Items []domain.ShoppingListItem `json:"items"`
}

// ShoppingListService defines the shopping list contract.
type ShoppingListService interface {
	Create(ctx context.Context, input *CreateShoppingListInput) (*ShoppingListDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ShoppingListDetail, error)
	List(ctx context.Context, offset, limit int) ([]domain.ShoppingList, int, error)
	SetItemChecked(ctx context.Context, listID, itemID uuid.UUID, checked bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shoppingListService struct {
	listRepo   port.ShoppingListRepository
	recipeRepo port.RecipeRepository
}

// NewShoppingListService creates a new ShoppingListService implementation.
func NewShoppingListService(listRepo port.ShoppingListRepository, recipeRepo port.RecipeRepository) ShoppingListService {
	return &shoppingListService{listRepo: listRepo, recipeRepo: recipeRepo}
}

// Create consolidates the ingredient lines of the given recipes into one list.
func (s *shoppingListService) Create(ctx context.Context, input *CreateShoppingListInput) (*ShoppingListDetail, error) {
	recipes, err := s.recipeRepo.GetByIDs(ctx, input.RecipeIDs)
	if err != nil {
		return nil, err
	}
	if len(recipes) != len(input.RecipeIDs) {
		return nil, domain.ErrRecipeNotFound
	}

	sources := make([]consolidate.RecipeIngredients, 0, len(recipes))
	for _, r := range recipes {
		sources = append(sources, consolidate.RecipeIngredients{
			RecipeID: r.ID.String(),
			Lines:    []string(r.Ingredients),
		})
	}
	consolidated := consolidate.Consolidate(sources)

	now := time.Now().UTC()
	list := &domain.ShoppingList{
		ID:        uuid.New(),
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	items := make([]domain.ShoppingListItem, 0, len(consolidated))
	for i, ing := range consolidated {
		items = append(items, domain.ShoppingListItem{
			ID:        uuid.New(),
			ListID:    list.ID,
			Name:      ing.Name,
			Quantity:  ing.Quantity,
			Unit:      ing.Unit,
			Notes:     ing.Notes,
			RecipeIDs: domain.StringList(ing.RecipeIDs),
			Position:  i,
			CreatedAt: now,
		})
	}

	if err := s.listRepo.Create(ctx, list, items); err != nil {
		return nil, err
	}
	log.Printf("shoppingListService: created list %s (%q, %d items from %d recipes)",
		list.ID, list.Name, len(items), len(recipes))
	return &ShoppingListDetail{List: list, Items: items}, nil
}

func (s *shoppingListService) GetByID(ctx context.Context, id uuid.UUID) (*ShoppingListDetail, error) {
	list, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.listRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ShoppingListDetail{List: list, Items: items}, nil
}

func (s *shoppingListService) List(ctx context.Context, offset, limit int) ([]domain.ShoppingList, int, error) {
	return s.listRepo.List(ctx, offset, limit)
}

func (s *shoppingListService) SetItemChecked(ctx context.Context, listID, itemID uuid.UUID, checked bool) error {
	return s.listRepo.SetItemChecked(ctx, listID, itemID, checked)
}

func (s *shoppingListService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.listRepo.Delete(ctx, id)
}
