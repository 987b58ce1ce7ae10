package normalize

import "strings"

// ImageURL cleans a single extracted image URL: scheme-relative URLs get
// https, data: URIs and blanks are dropped (returned as "").
func ImageURL(raw string) string {
	u := strings.TrimSpace(raw)
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "data:"):
		return ""
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	default:
		return u
	}
}

// ImageURLs cleans and de-duplicates an ordered list of image URLs,
// preserving first-seen order.
func ImageURLs(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, r := range raw {
		u := ImageURL(r)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
