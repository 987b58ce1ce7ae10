package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringList is a []string stored as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
}

// ParsedRecipeData is the intermediate result of one extraction tier.
// Fields are filled by extractors and supplemented across tiers; a field is
// considered final only after it has passed through its normalizer (durations
// in minutes, tags lower-cased and de-noised).
type ParsedRecipeData struct {
	Title            string
	Ingredients      []string
	Instructions     []string
	Servings         *int
	ServingSize      string
	PrepTimeMinutes  *int
	CookTimeMinutes  *int
	TotalTimeMinutes *int
	Tags             []string
	Cuisine          string
	Description      string
	ImageURLs        []string
	SourceURL        string
}

// IsEmpty reports whether no field carries data. The orchestrator treats an
// empty tier result as "try the next tier", not as an error.
func (p *ParsedRecipeData) IsEmpty() bool {
	return p == nil || (p.Title == "" &&
		len(p.Ingredients) == 0 &&
		len(p.Instructions) == 0 &&
		p.Servings == nil &&
		p.ServingSize == "" &&
		p.PrepTimeMinutes == nil &&
		p.CookTimeMinutes == nil &&
		p.TotalTimeMinutes == nil &&
		len(p.Tags) == 0 &&
		p.Cuisine == "" &&
		p.Description == "" &&
		len(p.ImageURLs) == 0)
}

// Recipe is the persisted entity, constructed from a finalized
// ParsedRecipeData at import time and mutated only by user edits thereafter.
type Recipe struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Title            string     `db:"title" json:"title"`
	Description      string     `db:"description" json:"description"`
	Ingredients      StringList `db:"ingredients" json:"ingredients"`
	Instructions     StringList `db:"instructions" json:"instructions"`
	Servings         *int       `db:"servings" json:"servings"`
	ServingSize      string     `db:"serving_size" json:"serving_size"`
	PrepTimeMinutes  *int       `db:"prep_time_minutes" json:"prep_time_minutes"`
	CookTimeMinutes  *int       `db:"cook_time_minutes" json:"cook_time_minutes"`
	TotalTimeMinutes *int       `db:"total_time_minutes" json:"total_time_minutes"`
	Tags             StringList `db:"tags" json:"tags"`
	Cuisine          string     `db:"cuisine" json:"cuisine"`
	ImageURLs        StringList `db:"image_urls" json:"image_urls"`
	SourceKind       SourceKind `db:"source_kind" json:"source_kind"`
	SourceURL        string     `db:"source_url" json:"source_url"`
	SourceFileKey    string     `db:"source_file_key" json:"source_file_key"`
	IsFavorite       bool       `db:"is_favorite" json:"is_favorite"`
	IsTemplate       bool       `db:"is_template" json:"is_template"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// NewRecipe builds a Recipe from a finalized ParsedRecipeData.
func NewRecipe(data *ParsedRecipeData, kind SourceKind) *Recipe {
	now := time.Now().UTC()
	return &Recipe{
		ID:               uuid.New(),
		Title:            data.Title,
		Description:      data.Description,
		Ingredients:      StringList(data.Ingredients),
		Instructions:     StringList(data.Instructions),
		Servings:         data.Servings,
		ServingSize:      data.ServingSize,
		PrepTimeMinutes:  data.PrepTimeMinutes,
		CookTimeMinutes:  data.CookTimeMinutes,
		TotalTimeMinutes: data.TotalTimeMinutes,
		Tags:             StringList(data.Tags),
		Cuisine:          data.Cuisine,
		ImageURLs:        StringList(data.ImageURLs),
		SourceKind:       kind,
		SourceURL:        data.SourceURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ImportJob tracks one asynchronous import through the pipeline.
type ImportJob struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	SourceKind    SourceKind   `db:"source_kind" json:"source_kind"`
	SourceURL     string       `db:"source_url" json:"source_url"`
	Identifier    string       `db:"identifier" json:"identifier"`
	RawText       string       `db:"raw_text" json:"-"`
	SourceFileKey string       `db:"source_file_key" json:"source_file_key"`
	Status        ImportStatus `db:"status" json:"status"`
	Error         string       `db:"error" json:"error"`
	RecipeID      *uuid.UUID   `db:"recipe_id" json:"recipe_id"`
	Attempts      int          `db:"attempts" json:"attempts"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updated_at"`
}

// ShoppingList is a consolidated ingredient list built from one or more recipes.
type ShoppingList struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ShoppingListItem is one consolidated entry on a shopping list.
type ShoppingListItem struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	ListID    uuid.UUID  `db:"list_id" json:"list_id"`
	Name      string     `db:"name" json:"name"`
	Quantity  *float64   `db:"quantity" json:"quantity"`
	Unit      string     `db:"unit" json:"unit"`
	Notes     string     `db:"notes" json:"notes"`
	RecipeIDs StringList `db:"recipe_ids" json:"recipe_ids"`
	Checked   bool       `db:"checked" json:"checked"`
	Position  int        `db:"position" json:"position"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// MealPlan assigns recipes to dated slots. Deleting a recipe removes its
// entries here; that cascade is the service's responsibility, not the parser's.
type MealPlan struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MealPlanEntry links a recipe into a meal plan slot.
type MealPlanEntry struct {
	ID       uuid.UUID `db:"id" json:"id"`
	PlanID   uuid.UUID `db:"plan_id" json:"plan_id"`
	RecipeID uuid.UUID `db:"recipe_id" json:"recipe_id"`
	Day      int       `db:"day" json:"day"`
	Slot     MealSlot  `db:"slot" json:"slot"`
}

// ParsedIngredient is the transient consolidation value: one parsed ingredient
// line, possibly merged with equals from other recipes. Two ParsedIngredients
// are mergeable iff normalized name and unit are equal.
type ParsedIngredient struct {
	RawText   string   `json:"raw_text"`
	Quantity  *float64 `json:"quantity"`
	Unit      string   `json:"unit"`
	Name      string   `json:"name"`
	Notes     string   `json:"notes"`
	RecipeIDs []string `json:"recipe_ids"`
}
