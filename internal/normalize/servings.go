package normalize

import (
	"regexp"
	"strconv"
)

var firstIntRe = regexp.MustCompile(`\d+`)

// Servings extracts the first integer substring from a servings value
// ("4 servings", "4-6", "Serves 8"). Absent or unparsable input yields nil;
// defaulting is the caller's decision, not this layer's.
func Servings(raw string) *int {
	m := firstIntRe.FindString(raw)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}
