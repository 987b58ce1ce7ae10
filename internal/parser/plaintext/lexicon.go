package plaintext

import "regexp"

// Website-noise patterns. OCR and PDF text from recipe sites interleaves real
// content with navigation chrome, calls to action, and boilerplate; any line
// matching one of these is rejected before classification.
var noisePatterns = []*regexp.Regexp{
	// Call-to-action verb + recipe/commerce vocabulary.
	regexp.MustCompile(`(?i)\b(save|shop|get|view|see|click|subscribe|sign\s*up|log\s*in|create|download)\b.*\b(recipes?|ingredients?|meal|plan|list|account|newsletter|app)\b`),
	// Rating and review solicitations.
	regexp.MustCompile(`(?i)\b(leave|rate|write|post)\b.*\b(reviews?|ratings?|comments?)\b`),
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s+from\s+\d+\s+(votes?|reviews?|ratings?)\b`),
	regexp.MustCompile(`[★☆]`),
	// Generic marketing phrases.
	regexp.MustCompile(`(?i)\b(exclusive offer|limited time|free trial|join our|our newsletter|never miss)\b`),
	// Social and share prompts.
	regexp.MustCompile(`(?i)\b(share (this|on)|pin it|tweet|follow us|facebook|instagram|pinterest|tiktok)\b`),
	// Legal boilerplate.
	regexp.MustCompile(`(?i)\b(privacy policy|terms of (use|service)|all rights reserved|copyright)\b|©`),
	// Letter-spaced pseudo-headers like "S H O P".
	regexp.MustCompile(`^(?:[A-Za-z] ){2,}[A-Za-z]$`),
	// Bare navigation words.
	regexp.MustCompile(`(?i)^(home|about|about us|contact|contact us|blog|search|menu)$`),
}

// footerRe catches footer-shaped lines that slip past the generic noise
// filter; instructions matching it are rejected outright.
var footerRe = regexp.MustCompile(`(?i)\b(rate|comments?|subscribe|business|website)\b`)

// quantityUnitRe recognizes a number (incl. fractions) followed by a cooking
// unit, the strongest ingredient signal.
var quantityUnitRe = regexp.MustCompile(`(?i)(\d+(\.\d+)?(\s*/\s*\d+)?|[¼½¾⅓⅔⅛⅜⅝⅞])\s*(cups?|tablespoons?|tbsp|tbs|teaspoons?|tsp|ounces?|oz|pounds?|lbs?|grams?|g|kg|milliliters?|ml|liters?|l|quarts?|pints?|gallons?|cloves?|cans?|jars?|slices?|pieces?|sticks?|bunch(es)?|heads?|sprigs?|stalks?|pinch(es)?|dash(es)?)\b`)

// prepWordRe matches common preparation words on ingredient lines.
var prepWordRe = regexp.MustCompile(`(?i)\b(diced|chopped|minced|sliced|grated|shredded|peeled|crushed|melted|softened|beaten|divided|cubed|trimmed|rinsed|drained|ground|dried|fresh|frozen|cooked|uncooked|toasted|juiced|zested|halved|quartered)\b`)

// foodWordRe matches common food names for ingredient lines with no quantity.
var foodWordRe = regexp.MustCompile(`(?i)\b(flour|sugar|salt|pepper|butter|oil|eggs?|milk|cream|cheese|garlic|onions?|chicken|beef|pork|fish|shrimp|rice|pasta|noodles?|tomato(es)?|potato(es)?|carrots?|celery|mushrooms?|spinach|beans?|corn|broth|stock|wine|vinegar|honey|lemon|lime|vanilla|yeast|baking (powder|soda)|cinnamon|nutmeg|ginger|basil|parsley|cilantro|thyme|oregano|rosemary|chocolate|nuts?|almonds?|walnuts?|water)\b`)

// cookingVerbRe matches imperative cooking verbs for instruction lines.
var cookingVerbRe = regexp.MustCompile(`(?i)\b(mix|stir|bake|cook|heat|preheat|add|combine|whisk|beat|pour|place|remove|serve|chop|cut|slice|dice|mince|simmer|boil|fry|saute|sauté|sear|roast|grill|broil|blend|fold|knead|spread|sprinkle|season|drain|rinse|cover|uncover|chill|refrigerate|freeze|cool|rest|bring|reduce|toss|transfer|garnish|melt|flip|brown|marinate|soak|strain|mash|grease|line|arrange|top|repeat|divide)\b`)

// tempTimeRe matches oven temperatures and cook-time expressions, the other
// instruction signal.
var tempTimeRe = regexp.MustCompile(`(?i)\d+\s*(°|degrees?\b|f\b|c\b)|\b\d+\s*(minutes?|mins?|hours?|hrs?|seconds?|secs?)\b`)

var (
	bulletRe     = regexp.MustCompile(`^[\-•*▢◦‣·–—]+\s*`)
	numberingRe  = regexp.MustCompile(`^\d{1,3}[.)]\s+`)
	stepPrefixRe = regexp.MustCompile(`(?i)^step\s*\d+\s*[:.)\-]?\s*`)
)

// isNoise reports whether a line matches any website-noise pattern.
func IsNoise(line string) bool {
	for _, re := range noisePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// isIngredientLine applies the triple-OR acceptance rule: recall over
// precision, since a human reviews the imported result.
func IsIngredientLine(line string) bool {
	if len(line) < 3 || IsNoise(line) {
		return false
	}
	return quantityUnitRe.MatchString(line) ||
		prepWordRe.MatchString(line) ||
		foodWordRe.MatchString(line)
}

// isInstructionLine accepts lines that read like cooking steps and rejects
// short or footer-shaped lines.
func IsInstructionLine(line string) bool {
	if len(line) < 10 || IsNoise(line) {
		return false
	}
	if footerRe.MatchString(line) {
		return false
	}
	return cookingVerbRe.MatchString(line) || tempTimeRe.MatchString(line)
}

// cleanIngredient strips leading bullet and numbering markers while
// preserving all quantity text.
func CleanIngredient(line string) string {
	line = bulletRe.ReplaceAllString(line, "")
	line = numberingRe.ReplaceAllString(line, "")
	return line
}

// cleanInstruction strips "Step N:" prefixes and bare leading numbering.
func CleanInstruction(line string) string {
	line = stepPrefixRe.ReplaceAllString(line, "")
	line = numberingRe.ReplaceAllString(line, "")
	line = bulletRe.ReplaceAllString(line, "")
	return line
}
