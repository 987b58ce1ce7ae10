// Package plaintext extracts recipes from unstructured text, the tier used
// for OCR and PDF imports where no markup exists. It is pure heuristics: a
// section-header scan followed by per-line classification.
package plaintext

import (
	"regexp"
	"strings"

	"forkful/internal/domain"
	"forkful/internal/normalize"
)

// defaultServings is assumed when no parseable number is found in the
// servings line.
const defaultServings = 4

// placeholderTitle is used when no line qualifies as a title.
const placeholderTitle = "Untitled Recipe"

type sectionLabel string

const (
	secIngredients  sectionLabel = "ingredients"
	secInstructions sectionLabel = "instructions"
	secServings     sectionLabel = "servings"
	secPrepTime     sectionLabel = "prepTime"
	secCookTime     sectionLabel = "cookTime"
	secTotalTime    sectionLabel = "totalTime"
	secTags         sectionLabel = "tags"
)

// sectionTriggers maps each label to its header pattern. Scan order matters:
// the more specific time headers are tested before the generic ones so that
// "prep time" is never swallowed by another label.
var sectionTriggers = []struct {
	label sectionLabel
	re    *regexp.Regexp
}{
	{secPrepTime, regexp.MustCompile(`(?i)\bprep\s+time\b`)},
	{secCookTime, regexp.MustCompile(`(?i)\bcook\s+time\b`)},
	{secTotalTime, regexp.MustCompile(`(?i)\btotal\s+time\b`)},
	{secIngredients, regexp.MustCompile(`(?i)\bingredients?\b`)},
	{secInstructions, regexp.MustCompile(`(?i)\b(instructions?|directions?|steps?|method)\b`)},
	{secServings, regexp.MustCompile(`(?i)\b(servings?|yield|serves)\b`)},
	{secTags, regexp.MustCompile(`(?i)\b(tags?|categories|cuisine)\b`)},
}

// Extract parses raw unstructured text into a best-effort recipe. Only truly
// empty input fails (domain.ErrNoTextFound); any other input, however sparse,
// resolves to a result.
func Extract(rawText string) (*domain.ParsedRecipeData, error) {
	lines := splitLines(rawText)
	if len(lines) == 0 {
		return nil, domain.ErrNoTextFound
	}

	headers := scanSections(lines)

	data := &domain.ParsedRecipeData{}
	data.Title = pickTitle(lines, headers)

	for _, line := range sectionLines(lines, headers, secIngredients) {
		if IsIngredientLine(line) {
			data.Ingredients = append(data.Ingredients, CleanIngredient(line))
		}
	}
	for _, line := range sectionLines(lines, headers, secInstructions) {
		if IsInstructionLine(line) {
			data.Instructions = append(data.Instructions, CleanInstruction(line))
		}
	}

	servings := defaultServings
	if idx, ok := headers[secServings]; ok {
		if n := normalize.Servings(lines[idx]); n != nil {
			servings = *n
		}
	}
	data.Servings = &servings

	if idx, ok := headers[secPrepTime]; ok {
		data.PrepTimeMinutes = normalize.TextDurationMinutes(lines[idx])
	}
	if idx, ok := headers[secCookTime]; ok {
		data.CookTimeMinutes = normalize.TextDurationMinutes(lines[idx])
	}
	if idx, ok := headers[secTotalTime]; ok {
		data.TotalTimeMinutes = normalize.TextDurationMinutes(lines[idx])
	}

	if idx, ok := headers[secTags]; ok {
		raw := normalize.SplitTagLine(lines[idx])
		for _, line := range sectionLines(lines, headers, secTags) {
			raw = append(raw, normalize.SplitTagLine(line)...)
		}
		data.Tags = normalize.Tags(raw)
	}

	return data, nil
}

// splitLines splits, trims, and blank-filters the input.
func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// scanSections performs a single left-to-right scan recording, per label, the
// index of its first occurrence only. Later occurrences of an already-seen
// label are ignored.
func scanSections(lines []string) map[sectionLabel]int {
	headers := make(map[sectionLabel]int)
	for i, line := range lines {
		for _, trig := range sectionTriggers {
			if _, seen := headers[trig.label]; seen {
				continue
			}
			if !trig.re.MatchString(line) {
				continue
			}
			// An ingredients header that is itself a footer/CTA line
			// ("Save this recipe and ingredients list!") is chrome.
			if trig.label == secIngredients && IsNoise(line) {
				continue
			}
			headers[trig.label] = i
			break
		}
	}
	return headers
}

// sectionLines returns the lines strictly between a section header and the
// next-earliest other header (or end of text). Sections are contiguous and
// non-overlapping, ordered by their positions in the text.
func sectionLines(lines []string, headers map[sectionLabel]int, label sectionLabel) []string {
	start, ok := headers[label]
	if !ok {
		return nil
	}
	end := len(lines)
	for other, idx := range headers {
		if other != label && idx > start && idx < end {
			end = idx
		}
	}
	if start+1 >= end {
		return nil
	}
	return lines[start+1 : end]
}

// pickTitle returns the first sufficiently-long line before the ingredients
// header, the first non-blank line if no ingredients header exists, or a
// placeholder.
func pickTitle(lines []string, headers map[sectionLabel]int) string {
	limit := len(lines)
	if idx, ok := headers[secIngredients]; ok {
		limit = idx
	}

	headerIdx := make(map[int]struct{}, len(headers))
	for _, idx := range headers {
		headerIdx[idx] = struct{}{}
	}

	for i := 0; i < limit; i++ {
		if _, isHeader := headerIdx[i]; isHeader {
			continue
		}
		line := lines[i]
		if len(line) >= 3 && !IsNoise(line) {
			return line
		}
	}
	if _, ok := headers[secIngredients]; !ok && len(lines) > 0 {
		return lines[0]
	}
	return placeholderTitle
}
