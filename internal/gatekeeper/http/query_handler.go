package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gatekeeper/internal/gatekeeper/http/dto"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
	"github.com/allisson/gatekeeper/internal/httputil"
	customValidation "github.com/allisson/gatekeeper/internal/validation"
)

// QueryHandler validates GraphQL query text.
type QueryHandler struct {
	guard  usecase.GatekeeperUseCase
	strict bool
	logger *slog.Logger
}

// NewQueryHandler creates a query handler. strict is the default for requests that
// do not set it.
func NewQueryHandler(guard usecase.GatekeeperUseCase, strict bool, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{
		guard:  guard,
		strict: strict,
		logger: logger,
	}
}

// ValidateQueryHandler runs the keyword check and, in strict mode, the document check.
// POST /v1/queries/validate
// Returns 200, 403 for mutations, or 422 for unparseable documents in strict mode.
func (h *QueryHandler) ValidateQueryHandler(c *gin.Context) {
	var req dto.ValidateQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	strict := h.strict
	if req.Strict != nil {
		strict = *req.Strict
	}

	ctx := c.Request.Context()
	if err := h.guard.ValidateQueryText(ctx, req.Query); err != nil {
		handleGuardError(c, err, h.logger)
		return
	}
	if strict {
		if err := h.guard.ValidateDocument(ctx, req.Query); err != nil {
			handleGuardError(c, err, h.logger)
			return
		}
	}

	c.JSON(http.StatusOK, dto.ValidateQueryResponse{Allowed: true, Strict: strict})
}
