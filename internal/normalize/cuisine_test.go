package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"forkful/internal/normalize"
)

func TestCuisineFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Chicken Tacos", "mexican"},
		{"Creamy Pasta Bake", "italian"},
		{"Thai Green Curry", "thai"}, // first matching word wins
		{"Beef Stew", ""},
		{"Ratatouille", "french"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.CuisineFromTitle(tt.title))
		})
	}
}

func TestCuisineFromTitle_WholeWordsOnly(t *testing.T) {
	// "pho" must not match inside "phone" or similar substrings.
	assert.Equal(t, "", normalize.CuisineFromTitle("Photogenic Brunch Board"))
	assert.Equal(t, "vietnamese", normalize.CuisineFromTitle("Beef Pho"))
}

func TestResolveCuisine(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		title    string
		want     string
	}{
		{"declared wins", "Italian", "Chicken Tacos", "italian"},
		{"american demoted by title match", "American", "Chicken Tacos", "mexican"},
		{"american kept without title match", "American", "Meatloaf", "american"},
		{"derived fills blank", "", "Shrimp Pad Thai", "thai"},
		{"both blank", "", "Beef Stew", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.ResolveCuisine(tt.declared, tt.title))
		})
	}
}

func TestImageURLs(t *testing.T) {
	got := normalize.ImageURLs([]string{
		"//cdn.example.com/cake.jpg",
		"data:image/png;base64,AAAA",
		"https://example.com/cake.jpg",
		"https://cdn.example.com/cake.jpg",
		"",
	})
	assert.Equal(t, []string{
		"https://cdn.example.com/cake.jpg",
		"https://example.com/cake.jpg",
	}, got)
}

func TestSourceURL(t *testing.T) {
	assert.Equal(t, "https://example.com/r", normalize.SourceURL("example.com/r"))
	assert.Equal(t, "https://example.com/r", normalize.SourceURL("http://example.com/r"))
	assert.Equal(t, "https://example.com/r", normalize.SourceURL("https://example.com/r"))
	assert.Equal(t, "", normalize.SourceURL("  "))
}
