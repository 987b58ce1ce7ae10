package normalize

import "strings"

// cuisineKeywords maps title words to the cuisine they imply. Keys are
// matched as whole lower-cased words against the recipe title.
var cuisineKeywords = map[string]string{
	"taco":       "mexican",
	"tacos":      "mexican",
	"burrito":    "mexican",
	"enchilada":  "mexican",
	"quesadilla": "mexican",
	"salsa":      "mexican",
	"pasta":      "italian",
	"risotto":    "italian",
	"lasagna":    "italian",
	"gnocchi":    "italian",
	"carbonara":  "italian",
	"pizza":      "italian",
	"stir-fry":   "chinese",
	"stir":       "chinese",
	"wonton":     "chinese",
	"dumpling":   "chinese",
	"curry":      "indian",
	"tikka":      "indian",
	"masala":     "indian",
	"dal":        "indian",
	"biryani":    "indian",
	"pad":        "thai",
	"thai":       "thai",
	"teriyaki":   "japanese",
	"sushi":      "japanese",
	"ramen":      "japanese",
	"tempura":    "japanese",
	"gyro":       "greek",
	"tzatziki":   "greek",
	"souvlaki":   "greek",
	"falafel":    "middle eastern",
	"hummus":     "middle eastern",
	"shawarma":   "middle eastern",
	"kimchi":     "korean",
	"bulgogi":    "korean",
	"bibimbap":   "korean",
	"pho":        "vietnamese",
	"banh":       "vietnamese",
	"paella":     "spanish",
	"croissant":  "french",
	"ratatouille": "french",
	"crepe":      "french",
	"quiche":     "french",
	"goulash":    "hungarian",
	"pierogi":    "polish",
	"schnitzel":  "german",
	"bratwurst":  "german",
}

// CuisineFromTitle derives a cuisine from whole-word keyword matches in the
// recipe title. Returns "" when no keyword matches.
func CuisineFromTitle(title string) string {
	for _, word := range strings.Fields(strings.ToLower(title)) {
		word = strings.Trim(word, ".,!?:;()\"'")
		if c, ok := cuisineKeywords[word]; ok {
			return c
		}
	}
	return ""
}

// ResolveCuisine applies the cuisine tie-break policy: a title-derived
// cuisine beats a declared cuisine of "american", since generic "American"
// labeling is frequently a placeholder rather than a real signal. Otherwise
// the declared cuisine wins, then the title-derived one.
func ResolveCuisine(declared, title string) string {
	derived := CuisineFromTitle(title)
	declared = strings.ToLower(strings.TrimSpace(declared))
	if derived != "" && declared == "american" {
		return derived
	}
	if declared != "" {
		return declared
	}
	return derived
}
