package normalize

import "strings"

// SourceURL normalizes a user-supplied recipe URL: prepends https:// when no
// scheme is present and upgrades http:// to https://.
func SourceURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") {
		return "https://" + strings.TrimPrefix(u, "http://")
	}
	if !strings.HasPrefix(u, "https://") {
		return "https://" + u
	}
	return u
}
