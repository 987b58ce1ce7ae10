package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrListNotFound      = errors.New("shopping list not found")
	ErrPlanNotFound      = errors.New("meal plan not found")
	ErrImportNotFound    = errors.New("import job not found")
	ErrInvalidSourceKind = errors.New("invalid source kind")
	ErrInvalidMealSlot   = errors.New("invalid meal plan slot")

	// Pipeline failures. These are terminal for a single import, never for
	// the process; partial extraction is success, not an error.
	ErrNoRecipeData = errors.New("no recipe data found at URL")
	ErrNoTextFound  = errors.New("no text found to parse")
	ErrNoImageText  = errors.New("no text found in image")
)
