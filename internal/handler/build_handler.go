package handler

import (
	"net/http"
	"strings"

	"pc-builder/internal/model"
	"pc-builder/internal/service"

	"github.com/rs/zerolog"
)

// BuildHandler handles saved build HTTP requests.
type BuildHandler struct {
	service service.BuildService
	logger  zerolog.Logger
}

// NewBuildHandler creates a new build handler.
func NewBuildHandler(service service.BuildService, logger zerolog.Logger) *BuildHandler {
	return &BuildHandler{
		service: service,
		logger:  logger.With().Str("handler", "build").Logger(),
	}
}

// Create handles POST /api/builds requests.
func (h *BuildHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.BuildRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	build, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, build)
}

// GetOrUpdate handles GET and PATCH /api/builds/{id} requests.
func (h *BuildHandler) GetOrUpdate(w http.ResponseWriter, r *http.Request) {
	// Expecting path: /api/builds/{id}
	buildID := strings.TrimPrefix(r.URL.Path, "/api/builds/")
	if buildID == "" || strings.Contains(buildID, "/") {
		writeError(w, http.StatusBadRequest, "build ID is required", h.logger)
		return
	}

	switch r.Method {
	case http.MethodGet:
		build, err := h.service.GetByID(r.Context(), buildID)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, build)

	case http.MethodPatch:
		var upd model.BuildUpdate
		if err := decodeJSON(r, &upd); err != nil {
			writeServiceError(w, err, h.logger)
			return
		}

		build, err := h.service.Update(r.Context(), buildID, upd)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, build)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}
