package consolidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/consolidate"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantQty  *float64
		wantUnit string
		wantName string
	}{
		{"plain quantity and unit", "2 cups flour", f(2), "cup", "flour"},
		{"unit alias", "3 tbsp olive oil", f(3), "tablespoon", "olive oil"},
		{"mixed number", "1 1/2 cups sugar", f(1.5), "cup", "sugar"},
		{"vulgar fraction", "½ cup milk", f(0.5), "cup", "milk"},
		{"fraction only", "1/4 teaspoon salt", f(0.25), "teaspoon", "salt"},
		{"no quantity", "salt to taste", nil, "", "salt to taste"},
		{"quantity no unit", "2 eggs", f(2), "", "eggs"},
		{"of connector", "2 cups of flour", f(2), "cup", "flour"},
		{"modifier stripped", "1 cup diced onions", f(1), "cup", "onions"},
		{"minced preserved", "2 cloves minced garlic", f(2), "clove", "minced garlic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := consolidate.ParseLine(tt.line)
			if tt.wantQty == nil {
				assert.Nil(t, got.Quantity)
			} else {
				require.NotNil(t, got.Quantity)
				assert.InDelta(t, *tt.wantQty, *got.Quantity, 1e-9)
			}
			assert.Equal(t, tt.wantUnit, got.Unit)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestParseLine_Container(t *testing.T) {
	t.Run("size with container word", func(t *testing.T) {
		got := consolidate.ParseLine("9 oz can of tomatoes")
		require.NotNil(t, got.Quantity)
		assert.Equal(t, 1.0, *got.Quantity)
		assert.Equal(t, "can", got.Unit)
		assert.Equal(t, "tomatoes", got.Name)
		assert.Equal(t, "9 oz", got.Notes)
	})

	t.Run("counted parenthesized size", func(t *testing.T) {
		got := consolidate.ParseLine("2 (15 oz) cans black beans")
		require.NotNil(t, got.Quantity)
		assert.Equal(t, 2.0, *got.Quantity)
		assert.Equal(t, "can", got.Unit)
		assert.Equal(t, "black beans", got.Name)
		assert.Equal(t, "15 oz", got.Notes)
	})
}

func TestConsolidate_SumsMatchingItems(t *testing.T) {
	got := consolidate.Consolidate([]consolidate.RecipeIngredients{
		{RecipeID: "r1", Lines: []string{"1 cup flour", "2 eggs"}},
		{RecipeID: "r2", Lines: []string{"1/2 cup flour", "1 cup sugar"}},
	})

	require.Len(t, got, 3)

	flour := got[0]
	assert.Equal(t, "flour", flour.Name)
	require.NotNil(t, flour.Quantity)
	assert.InDelta(t, 1.5, *flour.Quantity, 1e-9)
	assert.Equal(t, "cup", flour.Unit)
	assert.Equal(t, []string{"r1", "r2"}, flour.RecipeIDs)

	assert.Equal(t, "eggs", got[1].Name)
	assert.Equal(t, "sugar", got[2].Name)
}

func TestConsolidate_UnitMismatchStaysSeparate(t *testing.T) {
	got := consolidate.Consolidate([]consolidate.RecipeIngredients{
		{RecipeID: "r1", Lines: []string{"1 cup butter"}},
		{RecipeID: "r2", Lines: []string{"2 sticks butter"}},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "cup", got[0].Unit)
	assert.Equal(t, "stick", got[1].Unit)
}

func TestConsolidate_UnquantifiedNeverSumsWithQuantified(t *testing.T) {
	got := consolidate.Consolidate([]consolidate.RecipeIngredients{
		{RecipeID: "r1", Lines: []string{"1 teaspoon salt"}},
		{RecipeID: "r2", Lines: []string{"salt to taste"}},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "salt", got[0].Name)
	assert.Equal(t, "salt to taste", got[1].Name)
	assert.Nil(t, got[1].Quantity)
}

func TestConsolidate_StrippedModifiersMerge(t *testing.T) {
	got := consolidate.Consolidate([]consolidate.RecipeIngredients{
		{RecipeID: "r1", Lines: []string{"1 cup diced onions"}},
		{RecipeID: "r2", Lines: []string{"1 cup chopped onions"}},
	})
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Quantity)
	assert.Equal(t, 2.0, *got[0].Quantity)
	assert.Equal(t, "onions", got[0].Name)
}

func TestConsolidate_MincedStaysDistinct(t *testing.T) {
	got := consolidate.Consolidate([]consolidate.RecipeIngredients{
		{RecipeID: "r1", Lines: []string{"2 cloves garlic"}},
		{RecipeID: "r2", Lines: []string{"2 cloves minced garlic"}},
	})
	require.Len(t, got, 2)
}

func TestConsolidate_SkipsBlankLines(t *testing.T) {
	got := consolidate.Consolidate([]consolidate.RecipeIngredients{
		{RecipeID: "r1", Lines: []string{"", "   ", "1 cup rice"}},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "rice", got[0].Name)
}

func f(v float64) *float64 { return &v }
