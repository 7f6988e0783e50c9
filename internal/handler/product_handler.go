package handler

import (
	"net/http"
	"strconv"
	"strings"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"
	"pc-builder/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalog-related HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with filtering.
//
// Supported query parameters: category, brand (comma separated),
// socket (comma separated), search, minPrice, maxPrice.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query()

	filter := repository.ProductFilter{
		Category: model.Category(query.Get("category")),
		Brands:   splitParam(query.Get("brand")),
		Sockets:  splitParam(query.Get("socket")),
		Search:   query.Get("search"),
	}

	if raw := query.Get("minPrice"); raw != "" {
		minPrice, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid minPrice parameter", h.logger)
			return
		}
		filter.MinPrice = &minPrice
	}

	if raw := query.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid maxPrice parameter", h.logger)
			return
		}
		filter.MaxPrice = &maxPrice
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/products/{id}
	productID := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if productID == "" || strings.Contains(productID, "/") {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Categories(r.Context()))
}

// splitParam splits a comma separated query parameter, dropping empty
// entries.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
