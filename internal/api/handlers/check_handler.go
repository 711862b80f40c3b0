package handlers

import (
	"net/http"

	api "checkhub/internal/api/application"
)

// CheckHandler handles check ingestion and history queries
type CheckHandler struct {
	service *api.CheckService
}

// NewCheckHandler creates a new check handler
func NewCheckHandler(service *api.CheckService) *CheckHandler {
	return &CheckHandler{
		service: service,
	}
}

// CreateCheck handles POST /api/v1/monitors/{monitorId}/checks
// @Summary      Report a check
// @Description  Store a check result reported by the check-execution process
// @Tags         checks
// @Accept       json
// @Produce      json
// @Param        monitorId  path      string                           true  "Monitor ID"
// @Param        check      body      application.CreateCheckBody      true  "Check result"
// @Success      200        {object}  application.Envelope
// @Failure      404        {object}  application.ErrorResponse
// @Failure      422        {object}  application.ErrorResponse
// @Failure      500        {object}  application.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /monitors/{monitorId}/checks [post]
func (h *CheckHandler) CreateCheck(w http.ResponseWriter, r *http.Request) {
	req, err := checkRequest(w, r, true)
	if err != nil {
		respondError(w, r, err)
		return
	}

	env, err := h.service.CreateCheck(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	getLogger(r).Debug("Check created", "monitor_id", req.Params["monitorId"])
	respondJSON(w, http.StatusOK, env)
}

// GetChecks handles GET /api/v1/monitors/{monitorId}/checks
// @Summary      List a monitor's checks
// @Description  Get one page of a monitor's checks and the total matching count
// @Tags         checks
// @Produce      json
// @Param        monitorId    path      string  true   "Monitor ID"
// @Param        sortOrder    query     string  false  "asc or desc (default desc)"
// @Param        dateRange    query     string  false  "day, week, month or all (default all)"
// @Param        filter       query     string  false  "all, up, down or resolve (default all)"
// @Param        page         query     int     false  "Zero-based page"
// @Param        rowsPerPage  query     int     false  "Page size, 1-100 (default 25)"
// @Param        limit        query     int     false  "Result cap without paging, 1-1000 (default 100)"
// @Success      200          {object}  application.Envelope
// @Failure      422          {object}  application.ErrorResponse
// @Failure      500          {object}  application.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /monitors/{monitorId}/checks [get]
func (h *CheckHandler) GetChecks(w http.ResponseWriter, r *http.Request) {
	req, err := checkRequest(w, r, false)
	if err != nil {
		respondError(w, r, err)
		return
	}

	env, err := h.service.GetChecks(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, env)
}

// GetTeamChecks handles GET /api/v1/teams/{teamId}/checks
// @Summary      List a team's checks
// @Description  Get checks across every monitor owned by a team
// @Tags         checks
// @Produce      json
// @Param        teamId       path      string  true   "Team ID"
// @Param        sortOrder    query     string  false  "asc or desc (default desc)"
// @Param        dateRange    query     string  false  "day, week, month or all (default all)"
// @Param        filter       query     string  false  "all, up, down or resolve (default all)"
// @Param        page         query     int     false  "Zero-based page"
// @Param        rowsPerPage  query     int     false  "Page size, 1-100 (default 25)"
// @Param        limit        query     int     false  "Result cap without paging, 1-1000 (default 100)"
// @Success      200          {object}  application.Envelope
// @Failure      422          {object}  application.ErrorResponse
// @Failure      500          {object}  application.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /teams/{teamId}/checks [get]
func (h *CheckHandler) GetTeamChecks(w http.ResponseWriter, r *http.Request) {
	req, err := checkRequest(w, r, false)
	if err != nil {
		respondError(w, r, err)
		return
	}

	env, err := h.service.GetTeamChecks(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, env)
}
