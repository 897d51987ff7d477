package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/http/dto"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
	"github.com/allisson/gatekeeper/internal/httputil"
	customValidation "github.com/allisson/gatekeeper/internal/validation"
)

// ChannelHandler checks Slack channel access.
type ChannelHandler struct {
	guard  usecase.GatekeeperUseCase
	logger *slog.Logger
}

// NewChannelHandler creates a channel handler.
func NewChannelHandler(guard usecase.GatekeeperUseCase, logger *slog.Logger) *ChannelHandler {
	return &ChannelHandler{
		guard:  guard,
		logger: logger,
	}
}

// ValidateChannelHandler reports whether a channel may be read.
// POST /v1/channels/validate
// Returns 200 when readable and 403 for private channels, direct messages and
// channels outside the allow-list.
func (h *ChannelHandler) ValidateChannelHandler(c *gin.Context) {
	var req dto.ValidateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err := h.guard.ValidateChannelAccess(c.Request.Context(), req.ChannelID, domain.ChannelType(req.ChannelType))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ValidateChannelResponse{ChannelID: req.ChannelID, Allowed: true})
}
