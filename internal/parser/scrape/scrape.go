// Package scrape is the heuristic DOM tier: for sites without structured
// markup it guesses at ingredient and instruction elements from microdata
// attributes and class-name fragments, filtering candidates through the same
// classifiers the plain-text tier uses.
package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"forkful/internal/domain"
	"forkful/internal/normalize"
	"forkful/internal/parser/plaintext"
)

// ingredient/instruction class-name fragments seen across recipe themes.
var (
	ingredientSelectors = []string{
		`[itemprop="recipeIngredient"]`,
		`[itemprop="ingredients"]`,
		`[class*="recipe-ingredient"] li`,
		`[class*="ingredients-list"] li`,
		`[class*="ingredient"] li`,
		`ul[class*="ingredient"] li`,
	}
	instructionSelectors = []string{
		`[itemprop="recipeInstructions"] li`,
		`[itemprop="recipeInstructions"]`,
		`[class*="recipe-instruction"] li`,
		`[class*="instructions-list"] li`,
		`[class*="direction"] li`,
		`ol[class*="instruction"] li`,
		`ol[class*="step"] li`,
	}
)

// Extract scrapes a document without usable structured data. Returns nil when
// nothing recipe-shaped is found.
func Extract(doc *goquery.Document) *domain.ParsedRecipeData {
	data := &domain.ParsedRecipeData{}

	data.Ingredients = collect(doc, ingredientSelectors, acceptIngredient)
	data.Instructions = collect(doc, instructionSelectors, acceptInstruction)

	if title, ok := doc.Find(`[itemprop="name"]`).First().Attr("content"); ok {
		data.Title = strings.TrimSpace(title)
	}
	if data.Title == "" {
		data.Title = strings.TrimSpace(doc.Find(`h1[class*="recipe"], h1[class*="title"], h1`).First().Text())
	}

	if y, ok := doc.Find(`[itemprop="recipeYield"]`).First().Attr("content"); ok {
		data.Servings = normalize.Servings(y)
	} else if sel := doc.Find(`[itemprop="recipeYield"]`).First(); sel.Length() > 0 {
		data.Servings = normalize.Servings(sel.Text())
	}

	if data.IsEmpty() {
		return nil
	}
	return data
}

// collect gathers trimmed element text for the first selector that yields
// any accepted lines. Trying selectors in order keeps theme-specific
// selectors from double-harvesting the same list.
func collect(doc *goquery.Document, selectors []string, accept func(string) bool) []string {
	for _, sel := range selectors {
		var out []string
		seen := map[string]struct{}{}
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			line := normalizeSpace(s.Text())
			if line == "" || !accept(line) {
				return
			}
			if _, dup := seen[line]; dup {
				return
			}
			seen[line] = struct{}{}
			out = append(out, line)
		})
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func acceptIngredient(line string) bool {
	return len(line) < 200 && !plaintext.IsNoise(line) && len(line) >= 3
}

func acceptInstruction(line string) bool {
	return len(line) < 1000 && !plaintext.IsNoise(line) && len(line) >= 10
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
