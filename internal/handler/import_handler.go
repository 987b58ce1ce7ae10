package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkful/internal/config"
	"forkful/internal/domain"
	"forkful/internal/service"
)

// ImportHandler handles import pipeline endpoints.
type ImportHandler struct {
	importService service.ImportService
	maxFileBytes  int64
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportService, cfg *config.S3Config) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		maxFileBytes:  cfg.MaxFileSizeMB * 1024 * 1024,
	}
}

// ImportURL handles POST /api/v1/imports/url
func (h *ImportHandler) ImportURL(c *gin.Context) {
	var req service.ImportURLInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "url is required")
		return
	}

	job, err := h.importService.ImportURL(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c, job)
}

// ImportDocument handles POST /api/v1/imports/document. It accepts multipart
// form data: a required "text" field with the extracted plain text, a
// required "source_kind" of pdf or photo, and an optional "file" part with
// the original bytes for archival.
func (h *ImportHandler) ImportDocument(c *gin.Context) {
	kind := domain.SourceKind(c.PostForm("source_kind"))
	if kind != domain.SourcePDF && kind != domain.SourcePhoto {
		RespondError(c, http.StatusBadRequest, "INVALID_SOURCE_KIND", "source_kind must be pdf or photo")
		return
	}

	text := c.PostForm("text")
	if text == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}

	input := &service.ImportTextInput{
		SourceKind: kind,
		Text:       text,
		Identifier: c.PostForm("identifier"),
	}

	if file, header, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		if header.Size > h.maxFileBytes {
			RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size")
			return
		}
		data, err := io.ReadAll(io.LimitReader(file, h.maxFileBytes))
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
			return
		}
		input.File = data
		input.FileName = header.Filename
		input.ContentType = header.Header.Get("Content-Type")
	}

	job, err := h.importService.ImportText(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c, job)
}

// GetByID handles GET /api/v1/imports/:id
func (h *ImportHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.importService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, job)
}

// List handles GET /api/v1/imports
func (h *ImportHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	jobs, total, err := h.importService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, jobs, PagMeta{Total: total, Offset: offset, Limit: limit})
}
