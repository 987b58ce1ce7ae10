package domain

// SourceKind identifies where a recipe came from.
type SourceKind string

const (
	SourceURL    SourceKind = "url"
	SourcePDF    SourceKind = "pdf"
	SourcePhoto  SourceKind = "photo"
	SourceManual SourceKind = "manual"
)

// ValidSourceKinds enumerates the accepted source kinds for imports.
var ValidSourceKinds = map[SourceKind]bool{
	SourceURL:    true,
	SourcePDF:    true,
	SourcePhoto:  true,
	SourceManual: true,
}

// ImportStatus represents the lifecycle of an import job.
type ImportStatus string

const (
	ImportStatusQueued     ImportStatus = "queued"
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusCompleted  ImportStatus = "completed"
	ImportStatusFailed     ImportStatus = "failed"
)

// MealSlot is the meal-of-day position within a meal plan entry.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// ValidMealSlots enumerates the accepted meal plan slots.
var ValidMealSlots = map[MealSlot]bool{
	SlotBreakfast: true,
	SlotLunch:     true,
	SlotDinner:    true,
	SlotSnack:     true,
}
