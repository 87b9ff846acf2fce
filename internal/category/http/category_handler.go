// Package http provides the HTTP handlers for the /categorias collection.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/inventory/internal/category/http/dto"
	categoryUseCase "github.com/allisson/inventory/internal/category/usecase"
	"github.com/allisson/inventory/internal/httputil"
	customValidation "github.com/allisson/inventory/internal/validation"
)

// Acknowledgement messages returned by the mutating endpoints.
const (
	MessageCreated = "Categoría agregada correctamente"
	MessageUpdated = "Categoría actualizada correctamente"
	MessageDeleted = "Categoría eliminada correctamente"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	categoryUseCase categoryUseCase.CategoryUseCase
	logger          *slog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryUseCase categoryUseCase.CategoryUseCase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// ListHandler returns every category.
// GET /categorias - public.
func (h *CategoryHandler) ListHandler(c *gin.Context) {
	categories, err := h.categoryUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCategoriesToResponse(categories))
}

// CreateHandler inserts a category.
// POST /categorias - requires a bearer token.
func (h *CategoryHandler) CreateHandler(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	category, err := h.categoryUseCase.Create(c.Request.Context(), req.Name())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Debug("category created", slog.Int64("category_id", category.ID))
	httputil.RespondMessage(c, MessageCreated)
}

// UpdateHandler renames a category. Unknown ids are acknowledged the same way.
// PUT /categorias/:id - requires a bearer token.
func (h *CategoryHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	if err := h.categoryUseCase.Update(c.Request.Context(), id, req.Name()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.RespondMessage(c, MessageUpdated)
}

// DeleteHandler removes a category. Unknown ids are acknowledged the same way.
// DELETE /categorias/:id - requires a bearer token.
func (h *CategoryHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.categoryUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.RespondMessage(c, MessageDeleted)
}

func (h *CategoryHandler) bindRequest(c *gin.Context) (*dto.CategoryRequest, bool) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}

	return &req, true
}
