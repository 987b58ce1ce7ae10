package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"forkful/internal/domain"
	"forkful/internal/normalize"
	"forkful/internal/port"
)

// CreateRecipeInput is the DTO for manual recipe creation.
type CreateRecipeInput struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	Ingredients      []string `json:"ingredients"`
	Instructions     []string `json:"instructions"`
	Servings         *int     `json:"servings"`
	ServingSize      string   `json:"serving_size"`
	PrepTimeMinutes  *int     `json:"prep_time_minutes"`
	CookTimeMinutes  *int     `json:"cook_time_minutes"`
	TotalTimeMinutes *int     `json:"total_time_minutes"`
	Tags             []string `json:"tags"`
	Cuisine          string   `json:"cuisine"`
	ImageURLs        []string `json:"image_urls"`
	SourceURL        string   `json:"source_url"`
	IsTemplate       bool     `json:"is_template"`
}

// UpdateRecipeInput is the DTO for recipe edits. Nil pointer fields are left
// untouched so a PATCH-style update never clobbers data the caller omitted.
type UpdateRecipeInput struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Ingredients      *[]string `json:"ingredients"`
	Instructions     *[]string `json:"instructions"`
	Servings         *int      `json:"servings"`
	ServingSize      *string   `json:"serving_size"`
	PrepTimeMinutes  *int      `json:"prep_time_minutes"`
	CookTimeMinutes  *int      `json:"cook_time_minutes"`
	TotalTimeMinutes *int      `json:"total_time_minutes"`
	Tags             *[]string `json:"tags"`
	Cuisine          *string   `json:"cuisine"`
	ImageURLs        *[]string `json:"image_urls"`
	IsTemplate       *bool     `json:"is_template"`
}

// RecipeListFilter narrows a recipe listing. Zero value means no filter.
type RecipeListFilter struct {
	SourceKind    domain.SourceKind
	Tag           string
	FavoritesOnly bool
}

// RecipeService defines the recipe management contract.
type RecipeService interface {
	Create(ctx context.Context, input *CreateRecipeInput) (*domain.Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	List(ctx context.Context, filter RecipeListFilter, offset, limit int) ([]domain.Recipe, int, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateRecipeInput) (*domain.Recipe, error)
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeService struct {
	recipeRepo port.RecipeRepository
	planRepo   port.MealPlanRepository
}

// NewRecipeService creates a new RecipeService implementation.
func NewRecipeService(recipeRepo port.RecipeRepository, planRepo port.MealPlanRepository) RecipeService {
	return &recipeService{recipeRepo: recipeRepo, planRepo: planRepo}
}

func (s *recipeService) Create(ctx context.Context, input *CreateRecipeInput) (*domain.Recipe, error) {
	data := &domain.ParsedRecipeData{
		Title:            input.Title,
		Description:      input.Description,
		Ingredients:      input.Ingredients,
		Instructions:     input.Instructions,
		Servings:         input.Servings,
		ServingSize:      input.ServingSize,
		PrepTimeMinutes:  input.PrepTimeMinutes,
		CookTimeMinutes:  input.CookTimeMinutes,
		TotalTimeMinutes: input.TotalTimeMinutes,
		Tags:             normalize.Tags(input.Tags),
		Cuisine:          normalize.ResolveCuisine(input.Cuisine, input.Title),
		ImageURLs:        normalize.ImageURLs(input.ImageURLs),
	}
	if input.SourceURL != "" {
		data.SourceURL = normalize.SourceURL(input.SourceURL)
	}

	recipe := domain.NewRecipe(data, domain.SourceManual)
	recipe.IsTemplate = input.IsTemplate
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	log.Printf("recipeService: created recipe %s (%q)", recipe.ID, recipe.Title)
	return recipe, nil
}

func (s *recipeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	return s.recipeRepo.GetByID(ctx, id)
}

func (s *recipeService) List(ctx context.Context, filter RecipeListFilter, offset, limit int) ([]domain.Recipe, int, error) {
	switch {
	case filter.Tag != "":
		return s.recipeRepo.SearchByTag(ctx, normalize.Tag(filter.Tag), offset, limit)
	case filter.FavoritesOnly:
		return s.recipeRepo.ListFavorites(ctx, offset, limit)
	case filter.SourceKind != "":
		if !domain.ValidSourceKinds[filter.SourceKind] {
			return nil, 0, domain.ErrInvalidSourceKind
		}
		return s.recipeRepo.ListBySourceKind(ctx, filter.SourceKind, offset, limit)
	default:
		return s.recipeRepo.List(ctx, offset, limit)
	}
}

func (s *recipeService) Update(ctx context.Context, id uuid.UUID, input *UpdateRecipeInput) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.Ingredients != nil {
		recipe.Ingredients = domain.StringList(*input.Ingredients)
	}
	if input.Instructions != nil {
		recipe.Instructions = domain.StringList(*input.Instructions)
	}
	if input.Servings != nil {
		recipe.Servings = input.Servings
	}
	if input.ServingSize != nil {
		recipe.ServingSize = *input.ServingSize
	}
	if input.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = input.PrepTimeMinutes
	}
	if input.CookTimeMinutes != nil {
		recipe.CookTimeMinutes = input.CookTimeMinutes
	}
	if input.TotalTimeMinutes != nil {
		recipe.TotalTimeMinutes = input.TotalTimeMinutes
	}
	if input.Tags != nil {
		recipe.Tags = domain.StringList(normalize.Tags(*input.Tags))
	}
	if input.Cuisine != nil {
		recipe.Cuisine = normalize.ResolveCuisine(*input.Cuisine, recipe.Title)
	}
	if input.ImageURLs != nil {
		recipe.ImageURLs = domain.StringList(normalize.ImageURLs(*input.ImageURLs))
	}
	if input.IsTemplate != nil {
		recipe.IsTemplate = *input.IsTemplate
	}

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	return s.recipeRepo.SetFavorite(ctx, id, favorite)
}

// Delete removes the recipe and clears it out of every meal plan.
func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.planRepo.RemoveEntriesByRecipe(ctx, id); err != nil {
		return err
	}
	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("recipeService: deleted recipe %s", id)
	return nil
}
