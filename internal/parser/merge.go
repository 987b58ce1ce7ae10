package parser

import "forkful/internal/domain"

// Supplement copies every field that is populated in src and currently empty
// in dst. A later (lower-priority) tier can only fill gaps, never overwrite
// data from an earlier tier.
func Supplement(dst, src *domain.ParsedRecipeData) {
	if src == nil {
		return
	}
	if dst.Title == "" {
		dst.Title = src.Title
	}
	if len(dst.Ingredients) == 0 {
		dst.Ingredients = src.Ingredients
	}
	if len(dst.Instructions) == 0 {
		dst.Instructions = src.Instructions
	}
	if dst.Servings == nil {
		dst.Servings = src.Servings
	}
	if dst.ServingSize == "" {
		dst.ServingSize = src.ServingSize
	}
	if dst.PrepTimeMinutes == nil {
		dst.PrepTimeMinutes = src.PrepTimeMinutes
	}
	if dst.CookTimeMinutes == nil {
		dst.CookTimeMinutes = src.CookTimeMinutes
	}
	if len(dst.Tags) == 0 {
		dst.Tags = src.Tags
	}
	if dst.TotalTimeMinutes == nil {
		dst.TotalTimeMinutes = src.TotalTimeMinutes
	}
	if dst.Cuisine == "" {
		dst.Cuisine = src.Cuisine
	}
	if dst.Description == "" {
		dst.Description = src.Description
	}
	if len(dst.ImageURLs) == 0 {
		dst.ImageURLs = src.ImageURLs
	}
	if dst.SourceURL == "" {
		dst.SourceURL = src.SourceURL
	}
}

// complete reports whether every supplementable field is populated, letting
// the orchestrator stop before running lower tiers.
func complete(d *domain.ParsedRecipeData) bool {
	return d.Title != "" &&
		len(d.Ingredients) > 0 &&
		len(d.Instructions) > 0 &&
		d.Servings != nil &&
		d.ServingSize != "" &&
		d.PrepTimeMinutes != nil &&
		d.CookTimeMinutes != nil &&
		d.TotalTimeMinutes != nil &&
		len(d.Tags) > 0 &&
		d.Cuisine != "" &&
		d.Description != "" &&
		len(d.ImageURLs) > 0
}
