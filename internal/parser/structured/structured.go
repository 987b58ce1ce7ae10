// Package structured extracts recipes from embedded JSON-LD blocks, the
// highest-confidence tier of the import pipeline.
package structured

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"forkful/internal/domain"
	"forkful/internal/normalize"
)

// Extract scans every JSON-LD script block in document order and returns the
// first qualifying recipe candidate. A malformed block is logged and skipped,
// never aborting the rest of the document. Returns nil when no block yields a
// candidate.
func Extract(doc *goquery.Document) *domain.ParsedRecipeData {
	var data *domain.ParsedRecipeData

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		var root Value
		if err := json.Unmarshal([]byte(s.Text()), &root); err != nil {
			log.Printf("parser.structured: skipping malformed block %d: %v", i, err)
			return true
		}
		for _, cand := range candidates(root) {
			data = extractRecipe(cand)
			return false
		}
		return true
	})

	if data == nil {
		return nil
	}

	// CMS taxonomy often lives in rel="category"/"tag" anchors that the
	// structured data omits.
	data.Tags = normalize.Tags(append(data.Tags, linkedCategories(doc)...))
	return data
}

// candidates resolves the container shapes a block can take: a single typed
// object, an array of objects, an @graph wrapper, or a mislabeled
// Article/BlogPosting that structurally carries a recipe.
func candidates(root Value) []Value {
	switch root.Kind {
	case KindObject:
		if typeIs(root, "Recipe") {
			return []Value{root}
		}
		if graph, ok := root.Field("@graph"); ok && graph.Kind == KindArray {
			return filterRecipes(graph.Arr)
		}
		if isMislabeledRecipe(root) {
			return []Value{root}
		}
	case KindArray:
		return filterRecipes(root.Arr)
	}
	return nil
}

func filterRecipes(items []Value) []Value {
	var out []Value
	for _, item := range items {
		if typeIs(item, "Recipe") || isMislabeledRecipe(item) {
			out = append(out, item)
		}
	}
	return out
}

// typeIs checks the @type tag, which can be a single string or an array of
// strings; any matching element qualifies regardless of order.
func typeIs(v Value, want string) bool {
	t, ok := v.Field("@type")
	if !ok {
		return false
	}
	switch t.Kind {
	case KindString:
		return strings.EqualFold(t.Str, want)
	case KindArray:
		for _, e := range t.Arr {
			if e.Kind == KindString && strings.EqualFold(e.Str, want) {
				return true
			}
		}
	}
	return false
}

// isMislabeledRecipe treats Article/BlogPosting objects that carry ingredient
// and instruction fields as recipes; many sites mislabel the type.
func isMislabeledRecipe(v Value) bool {
	if !typeIs(v, "Article") && !typeIs(v, "BlogPosting") {
		return false
	}
	_, hasIngredients := v.Field("recipeIngredient")
	if !hasIngredients {
		_, hasIngredients = v.Field("ingredients")
	}
	_, hasInstructions := v.Field("recipeInstructions")
	return hasIngredients && hasInstructions
}

func extractRecipe(v Value) *domain.ParsedRecipeData {
	data := &domain.ParsedRecipeData{
		Title:       v.StringField("name"),
		Description: v.StringField("description"),
	}

	data.Ingredients = stringList(fieldOr(v, "recipeIngredient", "ingredients"))
	data.Instructions = instructionList(fieldOr(v, "recipeInstructions"))

	if yield, ok := fieldAny(v, "recipeYield", "yield"); ok {
		data.Servings = normalize.Servings(asText(yield))
	}

	data.PrepTimeMinutes = normalize.DurationMinutes(v.StringField("prepTime"))
	data.CookTimeMinutes = normalize.DurationMinutes(v.StringField("cookTime"))
	data.TotalTimeMinutes = normalize.DurationMinutes(v.StringField("totalTime"))

	if img, ok := v.Field("image"); ok {
		data.ImageURLs = normalize.ImageURLs(imageURLs(img))
	}

	if nutrition, ok := v.Field("nutrition"); ok {
		data.ServingSize = nutrition.StringField("servingSize")
	}

	cuisines := stringList(fieldOr(v, "recipeCuisine"))
	declared := ""
	if len(cuisines) > 0 {
		declared = cuisines[0]
	}
	data.Cuisine = normalize.ResolveCuisine(declared, data.Title)

	tags := stringList(fieldOr(v, "recipeCategory"))
	tags = append(tags, cuisines...)
	tags = append(tags, stringList(fieldOr(v, "keywords"))...)
	data.Tags = normalize.Tags(tags)

	return data
}

func fieldOr(v Value, names ...string) Value {
	for _, name := range names {
		if f, ok := v.Field(name); ok && f.Kind != KindNull {
			return f
		}
	}
	return Value{Kind: KindNull}
}

func fieldAny(v Value, names ...string) (Value, bool) {
	f := fieldOr(v, names...)
	return f, f.Kind != KindNull
}

// asText renders a scalar Value as text for downstream normalizers.
func asText(v Value) string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindArray:
		if len(v.Arr) > 0 {
			return asText(v.Arr[0])
		}
	case KindObject:
		return firstText(v, "text", "name", "@value")
	}
	return ""
}

// stringList applies the tag-like field polymorphism: a comma-separated
// string, an array of strings/objects/nested arrays, or a bare object.
func stringList(v Value) []string {
	switch v.Kind {
	case KindString:
		return splitCommas(v.Str)
	case KindArray:
		var out []string
		for _, e := range v.Arr {
			switch e.Kind {
			case KindString:
				if t := strings.TrimSpace(e.Str); t != "" {
					out = append(out, t)
				}
			case KindObject:
				if t := firstText(e, "text", "name", "@value"); t != "" {
					out = append(out, t)
				}
			case KindArray:
				if nested := stringList(e); len(nested) > 0 {
					out = append(out, strings.Join(nested, ", "))
				}
			}
		}
		return out
	case KindObject:
		if t := firstText(v, "text", "name", "@value"); t != "" {
			return []string{t}
		}
	}
	return nil
}

// instructionList handles the step field polymorphism: flat strings, HowToStep
// objects, HowToSection objects (section name emitted as a "name:" pseudo
// header followed by its steps), a single string, or a single step object.
// Unknown item shapes are skipped, not errored.
func instructionList(v Value) []string {
	switch v.Kind {
	case KindString:
		if t := strings.TrimSpace(v.Str); t != "" {
			return []string{t}
		}
	case KindObject:
		return instructionItem(v)
	case KindArray:
		var out []string
		for _, e := range v.Arr {
			switch e.Kind {
			case KindString:
				if t := strings.TrimSpace(e.Str); t != "" {
					out = append(out, t)
				}
			case KindObject:
				out = append(out, instructionItem(e)...)
			}
		}
		return out
	}
	return nil
}

func instructionItem(v Value) []string {
	if typeIs(v, "HowToSection") {
		var out []string
		if name := v.StringField("name"); name != "" {
			out = append(out, name+":")
		}
		if steps, ok := v.Field("itemListElement"); ok {
			out = append(out, instructionList(steps)...)
		}
		return out
	}
	// HowToStep and untyped step objects: text first, then name.
	if t := firstText(v, "text", "name"); t != "" {
		return []string{t}
	}
	return nil
}

// imageURLs accepts a single URL string, a single image object, or an array
// of either; all URLs found are kept in order.
func imageURLs(v Value) []string {
	switch v.Kind {
	case KindString:
		return []string{v.Str}
	case KindObject:
		if u := v.StringField("url"); u != "" {
			return []string{u}
		}
	case KindArray:
		var out []string
		for _, e := range v.Arr {
			out = append(out, imageURLs(e)...)
		}
		return out
	}
	return nil
}

// linkedCategories collects the text of anchors carrying a category or tag
// rel attribute.
func linkedCategories(doc *goquery.Document) []string {
	var out []string
	doc.Find("a[rel]").Each(func(_ int, s *goquery.Selection) {
		rel := s.AttrOr("rel", "")
		for _, r := range strings.Fields(rel) {
			if strings.EqualFold(r, "category") || strings.EqualFold(r, "tag") {
				if t := strings.TrimSpace(s.Text()); t != "" {
					out = append(out, t)
				}
				return
			}
		}
	})
	return out
}

func splitCommas(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
