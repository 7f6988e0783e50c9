package handler

import (
	"net/http"

	"pc-builder/internal/model"
	"pc-builder/internal/service"

	"github.com/rs/zerolog"
)

// WooCommerceHandler handles order submission HTTP requests.
type WooCommerceHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewWooCommerceHandler creates a new WooCommerce handler.
func NewWooCommerceHandler(service service.OrderService, logger zerolog.Logger) *WooCommerceHandler {
	return &WooCommerceHandler{
		service: service,
		logger:  logger.With().Str("handler", "woocommerce").Logger(),
	}
}

// CreateOrder handles POST /api/woocommerce/order requests.
func (h *WooCommerceHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	resp, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Status handles GET /api/woocommerce/status requests.
func (h *WooCommerceHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Status(r.Context()))
}
