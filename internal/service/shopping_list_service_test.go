package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forkful/internal/domain"
	"forkful/internal/service"
	"forkful/mocks"
)

func TestShoppingListCreate_ConsolidatesAcrossRecipes(t *testing.T) {
	listRepo := new(mocks.MockShoppingListRepo)
	recipeRepo := new(mocks.MockRecipeRepo)
	svc := service.NewShoppingListService(listRepo, recipeRepo)

	id1, id2 := uuid.New(), uuid.New()
	recipes := []domain.Recipe{
		{ID: id1, Title: "Cake", Ingredients: domain.StringList{"1 cup flour", "2 eggs"}},
		{ID: id2, Title: "Bread", Ingredients: domain.StringList{"1/2 cup flour"}},
	}

	recipeRepo.On("GetByIDs", mock.Anything, []uuid.UUID{id1, id2}).Return(recipes, nil)

	var captured []domain.ShoppingListItem
	listRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ShoppingList"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).([]domain.ShoppingListItem)
		}).
		Return(nil)

	detail, err := svc.Create(context.Background(), &service.CreateShoppingListInput{
		Name:      "Weekend Baking",
		RecipeIDs: []uuid.UUID{id1, id2},
	})
	require.NoError(t, err)

	require.Len(t, captured, 2)
	flour := captured[0]
	assert.Equal(t, "flour", flour.Name)
	require.NotNil(t, flour.Quantity)
	assert.InDelta(t, 1.5, *flour.Quantity, 1e-9)
	assert.Equal(t, "cup", flour.Unit)
	assert.ElementsMatch(t, []string{id1.String(), id2.String()}, []string(flour.RecipeIDs))
	assert.Equal(t, 0, flour.Position)
	assert.Equal(t, 1, captured[1].Position)

	assert.Equal(t, "Weekend Baking", detail.List.Name)
	assert.Len(t, detail.Items, 2)
}

func TestShoppingListCreate_MissingRecipe(t *testing.T) {
	listRepo := new(mocks.MockShoppingListRepo)
	recipeRepo := new(mocks.MockRecipeRepo)
	svc := service.NewShoppingListService(listRepo, recipeRepo)

	id1, id2 := uuid.New(), uuid.New()
	recipeRepo.On("GetByIDs", mock.Anything, []uuid.UUID{id1, id2}).
		Return([]domain.Recipe{{ID: id1}}, nil)

	_, err := svc.Create(context.Background(), &service.CreateShoppingListInput{
		Name:      "Partial",
		RecipeIDs: []uuid.UUID{id1, id2},
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	listRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestShoppingListGetByID_BundlesItems(t *testing.T) {
	listRepo := new(mocks.MockShoppingListRepo)
	recipeRepo := new(mocks.MockRecipeRepo)
	svc := service.NewShoppingListService(listRepo, recipeRepo)

	listID := uuid.New()
	listRepo.On("GetByID", mock.Anything, listID).Return(&domain.ShoppingList{ID: listID, Name: "L"}, nil)
	listRepo.On("ListItems", mock.Anything, listID).Return([]domain.ShoppingListItem{{Name: "flour"}}, nil)

	detail, err := svc.GetByID(context.Background(), listID)
	require.NoError(t, err)
	assert.Equal(t, "L", detail.List.Name)
	assert.Len(t, detail.Items, 1)
}
