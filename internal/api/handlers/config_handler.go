package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	api "checkhub/internal/api/application"
	configapp "checkhub/internal/config/application"
	"checkhub/internal/shared/validation"
)

// ConfigHandler handles registry configuration loading
type ConfigHandler struct {
	configLoader *configapp.Loader
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configLoader *configapp.Loader) *ConfigHandler {
	return &ConfigHandler{
		configLoader: configLoader,
	}
}

// LoadConfig handles POST /api/v1/config
// @Summary      Load registry configuration
// @Description  Register the teams and monitors checks may be reported for
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        config  body      application.LoadConfigRequest  true  "Configuration object"
// @Success      200     {object}  application.Envelope
// @Failure      400     {object}  application.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /config [post]
func (h *ConfigHandler) LoadConfig(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	var bodyBytes []byte
	if r.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			logger.Warn("Failed to read request body", "err", err)
			respondJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	if len(bodyBytes) == 0 {
		logger.Warn("Empty request body")
		respondJSONError(w, http.StatusBadRequest, "Invalid request body: request body is required")
		return
	}

	// Accept both {"config": {...}} and the bare config object
	var req api.LoadConfigRequest
	var configBytes []byte
	if err := json.Unmarshal(bodyBytes, &req); err == nil && len(req.Config) > 0 {
		configBytes = req.Config
		logger.Debug("Parsed config as wrapped format")
	} else {
		var probe map[string]any
		if err := json.Unmarshal(bodyBytes, &probe); err != nil {
			logger.Warn("Invalid JSON in request body", "err", err)
			respondJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		configBytes = bodyBytes
		logger.Debug("Parsed config as direct format")
	}

	if err := h.configLoader.LoadConfig(r.Context(), configBytes); err != nil {
		logger.Error("Failed to load config", "err", err)
		msg := err.Error()
		var valErr *validation.ValidationError
		if errors.As(err, &valErr) {
			msg = valErr.Message()
		}
		respondJSONError(w, http.StatusBadRequest, "Failed to load config: "+msg)
		return
	}

	logger.Info("Configuration loaded successfully")
	respondJSON(w, http.StatusOK, api.Envelope{Success: true, Msg: api.MsgConfigLoad, Data: json.RawMessage(configBytes)})
}

// GetConfig handles GET /api/v1/config
// @Summary      Get current registry configuration
// @Description  Retrieve the last successfully loaded configuration
// @Tags         config
// @Produce      json
// @Success      200     {object}  application.Envelope
// @Failure      404     {object}  application.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /config [get]
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	config := h.configLoader.GetConfig()
	if len(config) == 0 {
		logger.Warn("No configuration loaded")
		respondJSONError(w, http.StatusNotFound, "No configuration loaded")
		return
	}

	logger.Debug("Configuration retrieved successfully")
	respondJSON(w, http.StatusOK, api.Envelope{Success: true, Msg: api.MsgConfigGet, Data: json.RawMessage(config)})
}
