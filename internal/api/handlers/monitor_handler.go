package handlers

import (
	"net/http"

	api "checkhub/internal/api/application"
)

// MonitorHandler exposes the monitor registry
type MonitorHandler struct {
	service *api.MonitorService
}

// NewMonitorHandler creates a new monitor handler
func NewMonitorHandler(service *api.MonitorService) *MonitorHandler {
	return &MonitorHandler{
		service: service,
	}
}

// ListMonitors handles GET /api/v1/monitors
// @Summary      List monitors
// @Description  Get every registered monitor with its latest status
// @Tags         monitors
// @Produce      json
// @Success      200  {object}  application.Envelope
// @Failure      500  {object}  application.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /monitors [get]
func (h *MonitorHandler) ListMonitors(w http.ResponseWriter, r *http.Request) {
	env, err := h.service.ListMonitors(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, env)
}
