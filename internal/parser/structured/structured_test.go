package structured_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/parser/structured"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtract_FullRecipe(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{
		"@context": "https://schema.org",
		"@type": "Recipe",
		"name": "Classic Lasagna",
		"description": "Layered pasta bake.",
		"recipeIngredient": ["1 lb ground beef", "12 lasagna noodles"],
		"recipeInstructions": [
			{"@type": "HowToStep", "text": "Brown the beef."},
			{"@type": "HowToStep", "text": "Layer and bake."}
		],
		"recipeYield": "8 servings",
		"prepTime": "PT30M",
		"cookTime": "PT1H",
		"totalTime": "PT1H30M",
		"recipeCuisine": "Italian",
		"recipeCategory": ["Dinner", "Main Course"],
		"keywords": "comfort food, baked",
		"nutrition": {"@type": "NutritionInformation", "servingSize": "1 slice"},
		"image": ["https://example.com/lasagna.jpg"]
	}
	</script></head><body></body></html>`

	data := structured.Extract(parseDoc(t, html))
	require.NotNil(t, data)

	assert.Equal(t, "Classic Lasagna", data.Title)
	assert.Equal(t, "Layered pasta bake.", data.Description)
	assert.Equal(t, []string{"1 lb ground beef", "12 lasagna noodles"}, data.Ingredients)
	assert.Equal(t, []string{"Brown the beef.", "Layer and bake."}, data.Instructions)
	require.NotNil(t, data.Servings)
	assert.Equal(t, 8, *data.Servings)
	require.NotNil(t, data.PrepTimeMinutes)
	assert.Equal(t, 30, *data.PrepTimeMinutes)
	require.NotNil(t, data.CookTimeMinutes)
	assert.Equal(t, 60, *data.CookTimeMinutes)
	require.NotNil(t, data.TotalTimeMinutes)
	assert.Equal(t, 90, *data.TotalTimeMinutes)
	assert.Equal(t, "italian", data.Cuisine)
	assert.Equal(t, "1 slice", data.ServingSize)
	assert.Equal(t, []string{"dinner", "main course", "italian", "comfort food", "baked"}, data.Tags)
	assert.Equal(t, []string{"https://example.com/lasagna.jpg"}, data.ImageURLs)
}

func TestExtract_GraphWrapper(t *testing.T) {
	html := `<script type="application/ld+json">
	{"@graph": [
		{"@type": "WebSite", "name": "Some Blog"},
		{"@type": "Recipe", "name": "Graph Recipe", "recipeIngredient": ["1 cup rice"]}
	]}
	</script>`

	data := structured.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, "Graph Recipe", data.Title)
}

func TestExtract_TypeArray(t *testing.T) {
	html := `<script type="application/ld+json">
	{"@type": ["NewsArticle", "Recipe"], "name": "Typed Both Ways"}
	</script>`

	data := structured.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, "Typed Both Ways", data.Title)
}

func TestExtract_MislabeledArticle(t *testing.T) {
	html := `<script type="application/ld+json">
	{
		"@type": "BlogPosting",
		"name": "Actually A Recipe",
		"recipeIngredient": ["2 eggs"],
		"recipeInstructions": "Whisk and cook."
	}
	</script>`

	data := structured.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, "Actually A Recipe", data.Title)
	assert.Equal(t, []string{"Whisk and cook."}, data.Instructions)
}

func TestExtract_MalformedBlockSkipped(t *testing.T) {
	html := `
	<script type="application/ld+json">{not json at all</script>
	<script type="application/ld+json">{"@type": "Recipe", "name": "Survivor"}</script>`

	data := structured.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, "Survivor", data.Title)
}

func TestExtract_FirstCandidateWins(t *testing.T) {
	html := `
	<script type="application/ld+json">{"@type": "Recipe", "name": "First"}</script>
	<script type="application/ld+json">{"@type": "Recipe", "name": "Second"}</script>`

	data := structured.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, "First", data.Title)
}

func TestExtract_NoRecipeReturnsNil(t *testing.T) {
	html := `<script type="application/ld+json">{"@type": "WebSite", "name": "Just A Site"}</script>`
	assert.Nil(t, structured.Extract(parseDoc(t, html)))
	assert.Nil(t, structured.Extract(parseDoc(t, "<p>no markup here</p>")))
}

func TestExtract_HowToSections(t *testing.T) {
	html := `<script type="application/ld+json">
	{
		"@type": "Recipe",
		"name": "Sectioned",
		"recipeInstructions": [
			{"@type": "HowToSection", "name": "Make the dough", "itemListElement": [
				{"@type": "HowToStep", "text": "Mix flour and water."}
			]},
			{"@type": "HowToSection", "name": "Bake", "itemListElement": [
				{"@type": "HowToStep", "text": "Bake at 400F."}
			]}
		]
	}
	</script>`

	data := structured.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, []string{
		"Make the dough:",
		"Mix flour and water.",
		"Bake:",
		"Bake at 400F.",
	}, data.Instructions)
}

func TestExtract_AmericanCuisineDemotedByTitle(t *testing.T) {
	html := `<script type="application/ld+json">
	{"@type": "Recipe", "name": "Street Tacos", "recipeCuisine": "American"}
	</script>`

	data := structured.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, "mexican", data.Cuisine)
}

func TestExtract_LinkedCategoryTags(t *testing.T) {
	html := `
	<script type="application/ld+json">{"@type": "Recipe", "name": "Tagged", "recipeCategory": "Dinner"}</script>
	<a rel="category tag" href="/c/weeknight">Weeknight</a>
	<a rel="nofollow" href="/x">Ignore Me</a>`

	data := structured.Extract(parseDoc(t, html))
	require.NotNil(t, data)
	assert.Equal(t, []string{"dinner", "weeknight"}, data.Tags)
}
