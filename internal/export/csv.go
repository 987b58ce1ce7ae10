// Package export renders recipes and shopping lists into downloadable files.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"forkful/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// recipeColumns defines the CSV header row.
var recipeColumns = []string{
	"Title",
	"Description",
	"Ingredients",
	"Instructions",
	"Servings",
	"Serving Size",
	"Prep Time (min)",
	"Cook Time (min)",
	"Total Time (min)",
	"Tags",
	"Cuisine",
	"Source Kind",
	"Source URL",
	"Favorite",
	"Created At",
}

// CSVWriter wraps csv.Writer for exporting recipes as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(recipeColumns)
}

// WriteRecipes converts a batch of recipes to CSV rows and writes them.
func (w *CSVWriter) WriteRecipes(recipes []domain.Recipe) error {
	for i := range recipes {
		if err := w.csv.Write(recipeToRow(&recipes[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func recipeToRow(r *domain.Recipe) []string {
	return []string{
		r.Title,
		r.Description,
		strings.Join(r.Ingredients, "\n"),
		strings.Join(r.Instructions, "\n"),
		intPtrToString(r.Servings),
		r.ServingSize,
		intPtrToString(r.PrepTimeMinutes),
		intPtrToString(r.CookTimeMinutes),
		intPtrToString(r.TotalTimeMinutes),
		strings.Join(r.Tags, ", "),
		r.Cuisine,
		string(r.SourceKind),
		r.SourceURL,
		strconv.FormatBool(r.IsFavorite),
		r.CreatedAt.Format(time.RFC3339),
	}
}

func intPtrToString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
