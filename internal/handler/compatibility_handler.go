package handler

import (
	"net/http"

	"pc-builder/internal/compat"

	"github.com/rs/zerolog"
)

// CompatibilityHandler handles build compatibility check requests.
type CompatibilityHandler struct {
	evaluator *compat.Evaluator
	logger    zerolog.Logger
}

// NewCompatibilityHandler creates a new compatibility handler.
func NewCompatibilityHandler(evaluator *compat.Evaluator, logger zerolog.Logger) *CompatibilityHandler {
	return &CompatibilityHandler{
		evaluator: evaluator,
		logger:    logger.With().Str("handler", "compatibility").Logger(),
	}
}

// compatibilityRequest is the POST /api/compatibility payload: a map of
// category name to selected product id.
type compatibilityRequest struct {
	Components map[string]string `json:"components"`
}

// Check handles POST /api/compatibility requests. Unknown categories
// and unresolvable product ids are ignored rather than rejected, so a
// partially selected build can be checked while it is being assembled.
func (h *CompatibilityHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req compatibilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	result := h.evaluator.Evaluate(r.Context(), req.Components)

	writeJSON(w, http.StatusOK, result)
}
