package normalize

import (
	"regexp"
	"strings"
)

var (
	tagLabelRe = regexp.MustCompile(`(?i)^(?:tags?|categories|category|cuisine)\s*:?\s*`)
	tagNoiseRe = regexp.MustCompile(`[^a-z0-9&\- ]`)
	tagSpaceRe = regexp.MustCompile(`\s+`)
)

// Tag normalizes a single tag: lower-cased, label prefix stripped, inner
// whitespace collapsed, stray punctuation dropped. Idempotent: normalizing an
// already-normalized tag returns it unchanged.
func Tag(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = tagLabelRe.ReplaceAllString(t, "")
	t = tagNoiseRe.ReplaceAllString(t, "")
	t = tagSpaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Tags normalizes and de-duplicates a tag set, preserving first-seen order.
// Blank results are dropped.
func Tags(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, r := range raw {
		t := Tag(r)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SplitTagLine strips a recognized label prefix from a free-text tag line
// ("Tags: quick, dinner") and comma-splits the remainder into raw tags.
func SplitTagLine(line string) []string {
	rest := tagLabelRe.ReplaceAllString(strings.TrimSpace(line), "")
	parts := strings.Split(rest, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
