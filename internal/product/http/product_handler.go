// Package http provides the HTTP handlers for the /productos collection.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/inventory/internal/httputil"
	"github.com/allisson/inventory/internal/product/http/dto"
	productUseCase "github.com/allisson/inventory/internal/product/usecase"
	customValidation "github.com/allisson/inventory/internal/validation"
)

// Acknowledgement messages returned by the mutating endpoints.
const (
	MessageCreated = "Producto agregado"
	MessageUpdated = "Producto actualizado"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productUseCase productUseCase.ProductUseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productUseCase productUseCase.ProductUseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// ListHandler returns every product.
// GET /productos - public.
func (h *ProductHandler) ListHandler(c *gin.Context) {
	products, err := h.productUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductsToResponse(products))
}

// CreateHandler inserts a product.
// POST /productos - requires a bearer token.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Create(c.Request.Context(), req.Name(), req.CategoriaID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Debug("product created", slog.Int64("product_id", product.ID))
	httputil.RespondMessage(c, MessageCreated)
}

// UpdateHandler overwrites a product. Unknown ids are acknowledged the same way.
// PUT /productos/:id - requires a bearer token.
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	if err := h.productUseCase.Update(c.Request.Context(), id, req.Name(), req.CategoriaID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.RespondMessage(c, MessageUpdated)
}

func (h *ProductHandler) bindRequest(c *gin.Context) (*dto.ProductRequest, bool) {
	var req dto.ProductRequest
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
