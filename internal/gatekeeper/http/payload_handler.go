package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gatekeeper/internal/gatekeeper/http/dto"
	"github.com/allisson/gatekeeper/internal/httputil"
	"github.com/allisson/gatekeeper/internal/payload"
	customValidation "github.com/allisson/gatekeeper/internal/validation"
)

// PayloadHandler trims read results.
type PayloadHandler struct {
	defaults payload.Config
	logger   *slog.Logger
}

// NewPayloadHandler creates a payload handler using defaults for unset request fields.
func NewPayloadHandler(defaults payload.Config, logger *slog.Logger) *PayloadHandler {
	return &PayloadHandler{
		defaults: defaults,
		logger:   logger,
	}
}

// ProcessHandler selects fields, limits records and estimates tokens.
// POST /v1/payloads/process
func (h *PayloadHandler) ProcessHandler(c *gin.Context) {
	var req dto.ProcessPayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	cfg := h.defaults
	if req.MaxRecords > 0 {
		cfg.MaxRecords = req.MaxRecords
	}
	if len(req.SelectFields) > 0 {
		cfg.SelectFields = req.SelectFields
	}

	result, err := payload.Process(req.Items, cfg)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if result.ShouldNarrow {
		h.logger.Info("large read result, narrowing advised",
			slog.Int("original_count", result.OriginalCount),
			slog.Int("kept", len(result.Items)))
	}

	c.JSON(http.StatusOK, result)
}
