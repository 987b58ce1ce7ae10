package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forkful/internal/service"
)

// MealPlanHandler handles meal planning endpoints.
type MealPlanHandler struct {
	planService service.MealPlanService
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(planService service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{planService: planService}
}

// Create handles POST /api/v1/meal-plans
func (h *MealPlanHandler) Create(c *gin.Context) {
	var req service.CreateMealPlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name and start_date are required")
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, plan)
}

// List handles GET /api/v1/meal-plans
func (h *MealPlanHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	plans, total, err := h.planService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, plans, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/meal-plans/:id
func (h *MealPlanHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.planService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, detail)
}

// AddEntry handles POST /api/v1/meal-plans/:id/entries
func (h *MealPlanHandler) AddEntry(c *gin.Context) {
	planID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AddMealPlanEntryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "recipe_id and slot are required")
		return
	}

	entry, err := h.planService.AddEntry(c.Request.Context(), planID, &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, entry)
}

// RemoveEntry handles DELETE /api/v1/meal-plans/:id/entries/:entryID
func (h *MealPlanHandler) RemoveEntry(c *gin.Context) {
	planID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}

	if err := h.planService.RemoveEntry(c.Request.Context(), planID, entryID); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/meal-plans/:id
func (h *MealPlanHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.planService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
