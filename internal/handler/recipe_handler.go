package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"forkful/internal/domain"
	"forkful/internal/export"
	"forkful/internal/service"
)

// RecipeHandler handles recipe management endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// Create handles POST /api/v1/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req service.CreateRecipeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title is required")
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, recipe)
}

// List handles GET /api/v1/recipes
func (h *RecipeHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	filter := service.RecipeListFilter{
		SourceKind:    domain.SourceKind(c.Query("source_kind")),
		Tag:           c.Query("tag"),
		FavoritesOnly: c.Query("favorites") == "true",
	}

	recipes, total, err := h.recipeService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, recipes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/recipes/:id
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, recipe)
}

// Update handles PATCH /api/v1/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRecipeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, recipe)
}

// SetFavorite handles PUT /api/v1/recipes/:id/favorite
func (h *RecipeHandler) SetFavorite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Favorite *bool `json:"favorite" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "favorite is required")
		return
	}

	if err := h.recipeService.SetFavorite(c.Request.Context(), id, *req.Favorite); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "favorite": *req.Favorite})
}

// Delete handles DELETE /api/v1/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportCSV handles GET /api/v1/recipes/export
func (h *RecipeHandler) ExportCSV(c *gin.Context) {
	// Export everything; the cap matches the repository's widest page.
	var all []domain.Recipe
	offset := 0
	for {
		page, total, err := h.recipeService.List(c.Request.Context(), service.RecipeListFilter{}, offset, 100)
		if err != nil {
			HandleError(c, err)
			return
		}
		all = append(all, page...)
		offset += len(page)
		if offset >= total || len(page) == 0 {
			break
		}
	}

	filename := fmt.Sprintf("recipes-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewCSVWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRecipes(all); err != nil {
		return
	}
	_ = w.Flush()
}
