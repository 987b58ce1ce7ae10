package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"forkful/internal/domain"
)

func TestCSVWriter_WriteRecipes(t *testing.T) {
	servings := 4
	prep := 15
	created := time.Date(2026, 8, 12, 10, 30, 0, 0, time.UTC)

	recipes := []domain.Recipe{
		{
			Title:           "Dal Tadka",
			Description:     "Comforting lentils",
			Ingredients:     []string{"1 cup toor dal", "2 tbsp ghee"},
			Instructions:    []string{"Rinse the dal.", "Simmer until soft."},
			Servings:        &servings,
			PrepTimeMinutes: &prep,
			Tags:            []string{"dinner", "indian"},
			Cuisine:         "indian",
			SourceKind:      domain.SourceURL,
			SourceURL:       "https://example.com/dal-tadka",
			IsFavorite:      true,
			CreatedAt:       created,
		},
	}

	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecipes(recipes))
	require.NoError(t, w.Flush())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, recipeColumns, rows[0])

	row := rows[1]
	assert.Equal(t, "Dal Tadka", row[0])
	assert.Equal(t, "1 cup toor dal\n2 tbsp ghee", row[2])
	assert.Equal(t, "Rinse the dal.\nSimmer until soft.", row[3])
	assert.Equal(t, "4", row[4])
	assert.Equal(t, "15", row[6])
	assert.Equal(t, "", row[7], "nil cook time renders empty")
	assert.Equal(t, "dinner, indian", row[9])
	assert.Equal(t, "url", row[11])
	assert.Equal(t, "true", row[13])
	assert.Equal(t, "2026-08-12T10:30:00Z", row[14])
}

func TestWriteShoppingListXLSX(t *testing.T) {
	qty := 1.5
	list := &domain.ShoppingList{ID: uuid.New(), Name: "Week of Aug 10"}
	items := []domain.ShoppingListItem{
		{Name: "flour", Quantity: &qty, Unit: "cup", Position: 0},
		{Name: "salt", Notes: "to taste", Checked: true, Position: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteShoppingListXLSX(&buf, list, items))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Week of Aug 10"}, f.GetSheetList())

	rows, err := f.GetRows("Week of Aug 10")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, itemColumns, rows[0])
	assert.Equal(t, "flour", rows[1][0])
	assert.Equal(t, "1.5", rows[1][1])
	assert.Equal(t, "cup", rows[1][2])
	assert.Equal(t, "salt", rows[2][0])
	assert.Equal(t, "to taste", rows[2][3])
	assert.Equal(t, "TRUE", rows[2][4])
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Week of Aug 10", sheetName("Week of Aug 10"))
	assert.Equal(t, "Trip  groceries", sheetName("Trip: groceries"))
	assert.Equal(t, "Shopping List", sheetName("***"))
	assert.Len(t, sheetName("an extremely long shopping list name that keeps going"), 31)
}
