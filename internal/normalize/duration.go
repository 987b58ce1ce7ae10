// Package normalize holds the small pure normalizers shared by the
// extraction tiers: durations, servings, tags, cuisine, and image URLs.
package normalize

import (
	"regexp"
	"strconv"
)

var (
	isoHoursRe   = regexp.MustCompile(`(?i)PT(?:(\d+)H)`)
	isoMinutesRe = regexp.MustCompile(`(?i)(?:(\d+)M)`)
	textHoursRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)\b`)
	textMinsRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|m)\b`)
)

// DurationMinutes converts an ISO-8601-style duration string ("PT1H30M",
// "PT45M") to total minutes. The hour and minute components are extracted
// with independent patterns and summed. When neither pattern matches, the
// result is absent, never zero.
func DurationMinutes(iso string) *int {
	if iso == "" {
		return nil
	}
	total := 0
	matched := false
	if m := isoHoursRe.FindStringSubmatch(iso); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			total += h * 60
			matched = true
		}
	}
	if m := isoMinutesRe.FindStringSubmatch(iso); m != nil {
		if min, err := strconv.Atoi(m[1]); err == nil {
			total += min
			matched = true
		}
	}
	if !matched {
		return nil
	}
	return &total
}

// TextDurationMinutes parses free-text time expressions ("1 hour 15 min",
// "45m", "2 hrs") into total minutes. Hour and minute components are
// recognized independently and summed; an all-zero result is treated as
// absent.
func TextDurationMinutes(text string) *int {
	if text == "" {
		return nil
	}
	total := 0
	if m := textHoursRe.FindStringSubmatch(text); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			total += h * 60
		}
	}
	// Strip the matched hour expression so "1 hour" does not also feed the
	// bare-"h"/"m" minute pattern ambiguity on overlapping text.
	rest := textHoursRe.ReplaceAllString(text, "")
	if m := textMinsRe.FindStringSubmatch(rest); m != nil {
		if min, err := strconv.Atoi(m[1]); err == nil {
			total += min
		}
	}
	if total == 0 {
		return nil
	}
	return &total
}
