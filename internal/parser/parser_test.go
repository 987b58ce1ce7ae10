package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/domain"
	"forkful/internal/parser"
)

func TestParse_URLStructuredWins(t *testing.T) {
	html := `
	<head>
	<meta property="og:title" content="Metadata Title" />
	<script type="application/ld+json">
	{"@type": "Recipe", "name": "Structured Title", "recipeIngredient": ["1 cup flour"]}
	</script>
	</head>`

	data, err := parser.New().Parse(parser.Input{
		SourceKind: domain.SourceURL,
		HTML:       html,
		SourceURL:  "https://example.com/r",
	})
	require.NoError(t, err)
	assert.Equal(t, "Structured Title", data.Title)
	assert.Equal(t, "https://example.com/r", data.SourceURL)
}

func TestParse_LowerTiersSupplement(t *testing.T) {
	// Structured data carries the recipe body but no description or image;
	// the metadata tier fills those gaps without touching the title.
	html := `
	<head>
	<meta property="og:title" content="SEO Title" />
	<meta property="og:description" content="From the page metadata." />
	<meta property="og:image" content="https://example.com/hero.jpg" />
	<script type="application/ld+json">
	{"@type": "Recipe", "name": "Real Recipe", "recipeIngredient": ["2 eggs"]}
	</script>
	</head>`

	data, err := parser.New().Parse(parser.Input{SourceKind: domain.SourceURL, HTML: html})
	require.NoError(t, err)
	assert.Equal(t, "Real Recipe", data.Title)
	assert.Equal(t, "From the page metadata.", data.Description)
	assert.Equal(t, []string{"https://example.com/hero.jpg"}, data.ImageURLs)
}

func TestParse_NoRecipeData(t *testing.T) {
	_, err := parser.New().Parse(parser.Input{
		SourceKind: domain.SourceURL,
		HTML:       `<body><div class="nav"></div></body>`,
	})
	assert.ErrorIs(t, err, domain.ErrNoRecipeData)
}

func TestParse_PDFText(t *testing.T) {
	data, err := parser.New().Parse(parser.Input{
		SourceKind: domain.SourcePDF,
		Text:       "Lentil Soup\n\nIngredients:\n1 cup lentils\n\nInstructions:\nSimmer lentils for 30 minutes.\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lentil Soup", data.Title)
	assert.Equal(t, []string{"1 cup lentils"}, data.Ingredients)
}

func TestParse_EmptyPDFText(t *testing.T) {
	_, err := parser.New().Parse(parser.Input{SourceKind: domain.SourcePDF, Text: "   "})
	assert.ErrorIs(t, err, domain.ErrNoTextFound)
}

func TestParse_EmptyPhotoText(t *testing.T) {
	_, err := parser.New().Parse(parser.Input{
		SourceKind: domain.SourcePhoto,
		Text:       "",
		Identifier: "IMG_2041.jpg",
	})
	assert.ErrorIs(t, err, domain.ErrNoImageText)
	assert.Contains(t, err.Error(), "IMG_2041.jpg")
}

func TestParse_InvalidSourceKind(t *testing.T) {
	_, err := parser.New().Parse(parser.Input{SourceKind: "carrier-pigeon"})
	assert.ErrorIs(t, err, domain.ErrInvalidSourceKind)
}

func TestParse_ManualKindRejected(t *testing.T) {
	// Manual recipes are created directly, never parsed.
	_, err := parser.New().Parse(parser.Input{SourceKind: domain.SourceManual})
	assert.ErrorIs(t, err, domain.ErrInvalidSourceKind)
}
