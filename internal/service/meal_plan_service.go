package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"forkful/internal/domain"
	"forkful/internal/port"
)

// CreateMealPlanInput is the DTO for creating a meal plan.
type CreateMealPlanInput struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
}

// AddMealPlanEntryInput is the DTO for slotting a recipe into a plan.
type AddMealPlanEntryInput struct {
	RecipeID uuid.UUID       `json:"recipe_id" binding:"required"`
	Day      int             `json:"day" binding:"min=0,max=6"`
	Slot     domain.MealSlot `json:"slot" binding:"required"`
}

// MealPlanDetail bundles a plan with its entries.
type MealPlanDetail struct {
	Plan    *domain.MealPlan       `json:"plan"`
	Entries []domain.MealPlanEntry `json:"entries"`
}

// MealPlanService defines the meal planning contract.
type MealPlanService interface {
	Create(ctx context.Context, input *CreateMealPlanInput) (*domain.MealPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MealPlanDetail, error)
	List(ctx context.Context, offset, limit int) ([]domain.MealPlan, int, error)
	AddEntry(ctx context.Context, planID uuid.UUID, input *AddMealPlanEntryInput) (*domain.MealPlanEntry, error)
	RemoveEntry(ctx context.Context, planID, entryID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mealPlanService struct {
	planRepo   port.MealPlanRepository
	recipeRepo port.RecipeRepository
}

// NewMealPlanService creates a new MealPlanService implementation.
func NewMealPlanService(planRepo port.MealPlanRepository, recipeRepo port.RecipeRepository) MealPlanService {
	return &mealPlanService{planRepo: planRepo, recipeRepo: recipeRepo}
}

func (s *mealPlanService) Create(ctx context.Context, input *CreateMealPlanInput) (*domain.MealPlan, error) {
	now := time.Now().UTC()
	plan := &domain.MealPlan{
		ID:        uuid.New(),
		Name:      input.Name,
		StartDate: input.StartDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *mealPlanService) GetByID(ctx context.Context, id uuid.UUID) (*MealPlanDetail, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := s.planRepo.ListEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	return &MealPlanDetail{Plan: plan, Entries: entries}, nil
}

func (s *mealPlanService) List(ctx context.Context, offset, limit int) ([]domain.MealPlan, int, error) {
	return s.planRepo.List(ctx, offset, limit)
}

func (s *mealPlanService) AddEntry(ctx context.Context, planID uuid.UUID, input *AddMealPlanEntryInput) (*domain.MealPlanEntry, error) {
	if !domain.ValidMealSlots[input.Slot] {
		return nil, domain.ErrInvalidMealSlot
	}
	if _, err := s.planRepo.GetByID(ctx, planID); err != nil {
		return nil, err
	}
	if _, err := s.recipeRepo.GetByID(ctx, input.RecipeID); err != nil {
		return nil, err
	}

	entry := &domain.MealPlanEntry{
		ID:       uuid.New(),
		PlanID:   planID,
		RecipeID: input.RecipeID,
		Day:      input.Day,
		Slot:     input.Slot,
	}
	if err := s.planRepo.AddEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *mealPlanService) RemoveEntry(ctx context.Context, planID, entryID uuid.UUID) error {
	return s.planRepo.RemoveEntry(ctx, planID, entryID)
}

func (s *mealPlanService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.planRepo.Delete(ctx, id)
}
