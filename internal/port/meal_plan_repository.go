package port

import (
	"context"

	"github.com/google/uuid"

	"forkful/internal/domain"
)

// MealPlanRepository defines the contract for meal plan persistence.
type MealPlanRepository interface {
	Create(ctx context.Context, plan *domain.MealPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MealPlan, error)
	List(ctx context.Context, offset, limit int) ([]domain.MealPlan, int, error)
	AddEntry(ctx context.Context, entry *domain.MealPlanEntry) error
	ListEntries(ctx context.Context, planID uuid.UUID) ([]domain.MealPlanEntry, error)
	RemoveEntry(ctx context.Context, planID, entryID uuid.UUID) error
	RemoveEntriesByRecipe(ctx context.Context, recipeID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
