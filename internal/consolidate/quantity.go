// Package consolidate merges ingredient lists from one or more recipes into
// a single shopping list: quantity parsing, modifier stripping, unit-aware
// grouping, and quantity summation.
package consolidate

import (
	"regexp"
	"strconv"
	"strings"
)

// unitAliases maps every accepted unit token to its canonical form. The
// vocabulary is closed: an unrecognized token is part of the name.
var unitAliases = map[string]string{
	"cup": "cup", "cups": "cup", "c": "cup",
	"tablespoon": "tablespoon", "tablespoons": "tablespoon", "tbsp": "tablespoon", "tbs": "tablespoon",
	"teaspoon": "teaspoon", "teaspoons": "teaspoon", "tsp": "teaspoon",
	"ounce": "oz", "ounces": "oz", "oz": "oz",
	"pound": "lb", "pounds": "lb", "lb": "lb", "lbs": "lb",
	"gram": "g", "grams": "g", "g": "g",
	"kilogram": "kg", "kilograms": "kg", "kg": "kg",
	"milliliter": "ml", "milliliters": "ml", "ml": "ml",
	"liter": "l", "liters": "l", "l": "l",
	"quart": "quart", "quarts": "quart", "qt": "quart",
	"pint": "pint", "pints": "pint",
	"gallon": "gallon", "gallons": "gallon",
	"pinch": "pinch", "pinches": "pinch",
	"dash": "dash", "dashes": "dash",
	"clove": "clove", "cloves": "clove",
	"slice": "slice", "slices": "slice",
	"piece": "piece", "pieces": "piece",
	"stick": "stick", "sticks": "stick",
	"bunch": "bunch", "bunches": "bunch",
	"head": "head", "heads": "head",
	"sprig": "sprig", "sprigs": "sprig",
	"stalk": "stalk", "stalks": "stalk",
	"can": "can", "cans": "can",
	"jar": "jar", "jars": "jar",
	"package": "package", "packages": "package", "pkg": "package",
	"bag": "bag", "bags": "bag",
	"box": "box", "boxes": "box",
	"bottle": "bottle", "bottles": "bottle",
	"container": "container", "containers": "container",
}

// vulgarFractions maps common unicode fraction glyphs to their values.
var vulgarFractions = map[rune]float64{
	'¼': 0.25, '½': 0.5, '¾': 0.75,
	'⅓': 1.0 / 3.0, '⅔': 2.0 / 3.0,
	'⅛': 0.125, '⅜': 0.375, '⅝': 0.625, '⅞': 0.875,
}

var fractionRe = regexp.MustCompile(`^(\d+)/(\d+)$`)

// parseNumberToken converts a single token to its numeric value: a plain
// integer, a decimal, a simple fraction "1/2", or a unicode fraction glyph.
func parseNumberToken(tok string) (float64, bool) {
	if m := fractionRe.FindStringSubmatch(tok); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, false
		}
		return num / den, true
	}
	if r := []rune(tok); len(r) == 1 {
		if v, ok := vulgarFractions[r[0]]; ok {
			return v, true
		}
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v, true
	}
	return 0, false
}

// parseQuantity reads a leading quantity from the token stream, supporting
// plain numbers, simple fractions, and mixed numbers ("1 1/2"). It returns
// the parsed value and the number of tokens consumed.
func parseQuantity(tokens []string) (*float64, int) {
	if len(tokens) == 0 {
		return nil, 0
	}
	first, ok := parseNumberToken(tokens[0])
	if !ok {
		return nil, 0
	}
	consumed := 1
	// Mixed number: integer followed by a fractional token.
	if first == float64(int(first)) && len(tokens) > 1 {
		if frac, ok := parseNumberToken(tokens[1]); ok && frac < 1 {
			first += frac
			consumed = 2
		}
	}
	return &first, consumed
}

// parseUnit matches a token against the closed unit vocabulary, returning the
// canonical unit and whether it matched.
func parseUnit(tok string) (string, bool) {
	u, ok := unitAliases[strings.ToLower(strings.Trim(tok, ".,"))]
	return u, ok
}
