package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkful/internal/export"
	"forkful/internal/service"
)

// ShoppingListHandler handles shopping list endpoints.
type ShoppingListHandler struct {
	listService service.ShoppingListService
}

// NewShoppingListHandler creates a new ShoppingListHandler.
func NewShoppingListHandler(listService service.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{listService: listService}
}

// Create handles POST /api/v1/shopping-lists
func (h *ShoppingListHandler) Create(c *gin.Context) {
	var req service.CreateShoppingListInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name and at least one recipe_id are required")
		return
	}

	detail, err := h.listService.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, detail)
}

// List handles GET /api/v1/shopping-lists
func (h *ShoppingListHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	lists, total, err := h.listService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, lists, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/shopping-lists/:id
func (h *ShoppingListHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.listService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, detail)
}

// SetItemChecked handles PUT /api/v1/shopping-lists/:id/items/:itemID/checked
func (h *ShoppingListHandler) SetItemChecked(c *gin.Context) {
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemID")
	if !ok {
		return
	}

	var req struct {
		Checked *bool `json:"checked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "checked is required")
		return
	}

	if err := h.listService.SetItemChecked(c.Request.Context(), listID, itemID, *req.Checked); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"list_id": listID, "item_id": itemID, "checked": *req.Checked})
}

// Delete handles DELETE /api/v1/shopping-lists/:id
func (h *ShoppingListHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.listService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportXLSX handles GET /api/v1/shopping-lists/:id/export
func (h *ShoppingListHandler) ExportXLSX(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.listService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("shopping-list-%s.xlsx", id)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := export.WriteShoppingListXLSX(c.Writer, detail.List, detail.Items); err != nil {
		// Headers are already out; nothing left to do but log.
		_ = c.Error(err)
	}
}
