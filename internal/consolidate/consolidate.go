package consolidate

import (
	"regexp"
	"strings"

	"forkful/internal/domain"
)

// strippedModifiers are preparation adjectives that do not change what is
// purchased. "minced" is deliberately absent: minced garlic is a different
// purchasable form from whole garlic.
var strippedModifiers = map[string]struct{}{
	"diced":    {},
	"chopped":  {},
	"shredded": {},
	"sliced":   {},
	"cubed":    {},
}

// containerRe matches sized-container lines like "9 oz can of tomatoes" or
// "2 (15 oz) cans black beans": an optional count, a size with unit, a
// container word, and the item.
var containerRe = regexp.MustCompile(`(?i)^(?:(\d+)\s+)?\(?\s*(\d+(?:\.\d+)?(?:\s+\d+/\d+)?\s*(?:oz|ounces?|g|grams?|lbs?|pounds?|ml|l|liters?))\s*\)?\s+(cans?|jars?|packages?|bags?|boxes?|bottles?|containers?)\s+(?:of\s+)?(.+)$`)

var nameSpaceRe = regexp.MustCompile(`\s+`)

// RecipeIngredients is one recipe's contribution to a shopping list.
type RecipeIngredients struct {
	RecipeID string
	Lines    []string
}

// ParseLine parses a single raw ingredient line into its quantity, unit,
// normalized name, and notes.
func ParseLine(raw string) domain.ParsedIngredient {
	line := strings.TrimSpace(raw)
	ing := domain.ParsedIngredient{RawText: line}
	if line == "" {
		return ing
	}

	// Sized containers normalize to a container count: shoppers buy by the
	// can, not by raw weight. The size moves to notes.
	if m := containerRe.FindStringSubmatch(line); m != nil {
		count := 1.0
		if m[1] != "" {
			if v, ok := parseNumberToken(m[1]); ok {
				count = v
			}
		}
		unit, _ := parseUnit(m[3])
		ing.Quantity = &count
		ing.Unit = unit
		ing.Name = normalizeName(m[4])
		ing.Notes = strings.ToLower(strings.TrimSpace(m[2]))
		return ing
	}

	tokens := strings.Fields(line)
	qty, consumed := parseQuantity(tokens)
	tokens = tokens[consumed:]
	ing.Quantity = qty

	if len(tokens) > 0 {
		if unit, ok := parseUnit(tokens[0]); ok && qty != nil {
			ing.Unit = unit
			tokens = tokens[1:]
			if len(tokens) > 0 && strings.EqualFold(tokens[0], "of") {
				tokens = tokens[1:]
			}
		}
	}

	ing.Name = normalizeName(strings.Join(tokens, " "))
	return ing
}

// normalizeName lower-cases the remainder of an ingredient line and strips
// purchasable-form-preserving modifiers.
func normalizeName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.Trim(name, ".,;")
	var kept []string
	for _, word := range strings.Fields(name) {
		w := strings.Trim(word, ".,;()")
		if _, drop := strippedModifiers[w]; drop {
			continue
		}
		if w == "" {
			continue
		}
		kept = append(kept, w)
	}
	return nameSpaceRe.ReplaceAllString(strings.Join(kept, " "), " ")
}

// groupKey identifies a mergeable group. Items with no unit or no quantity
// group by name alone and are never summed against quantified items of the
// same name.
func groupKey(ing *domain.ParsedIngredient) string {
	if ing.Quantity == nil || ing.Unit == "" {
		return "|" + ing.Name
	}
	return ing.Unit + "|" + ing.Name
}

// Consolidate merges the ingredient lines of one or more recipes into a
// single list. Mergeable items (equal normalized name and unit) sum their
// quantities and union their contributing recipe ids. Output order is stable
// by first-seen group.
func Consolidate(recipes []RecipeIngredients) []domain.ParsedIngredient {
	var order []string
	groups := make(map[string]*domain.ParsedIngredient)

	for _, r := range recipes {
		for _, line := range r.Lines {
			ing := ParseLine(line)
			if ing.Name == "" {
				continue
			}
			if r.RecipeID != "" {
				ing.RecipeIDs = []string{r.RecipeID}
			}

			key := groupKey(&ing)
			existing, ok := groups[key]
			if !ok {
				fresh := ing
				groups[key] = &fresh
				order = append(order, key)
				continue
			}

			if existing.Quantity != nil && ing.Quantity != nil {
				sum := *existing.Quantity + *ing.Quantity
				existing.Quantity = &sum
			} else if existing.Quantity == nil {
				existing.Quantity = ing.Quantity
			}
			if existing.Notes == "" {
				existing.Notes = ing.Notes
			}
			existing.RecipeIDs = unionIDs(existing.RecipeIDs, ing.RecipeIDs)
		}
	}

	out := make([]domain.ParsedIngredient, 0, len(order))
	for _, key := range order {
		out = append(out, *groups[key])
	}
	return out
}

func unionIDs(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []string
	for _, id := range append(a, b...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
