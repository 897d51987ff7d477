// Package http provides HTTP handlers exposing the read-only guard as a JSON API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/http/dto"
	"github.com/allisson/gatekeeper/internal/httputil"
)

// handleGuardError writes 403 with the offending operation for read-only violations
// and defers to httputil.HandleErrorGin for everything else.
func handleGuardError(c *gin.Context, err error, logger *slog.Logger) {
	var violation *domain.ReadOnlyViolation
	if !apperrors.As(err, &violation) {
		httputil.HandleErrorGin(c, err, logger)
		return
	}

	logger.Warn("read-only violation",
		slog.String("operation", violation.Operation),
		slog.String("reason", string(violation.Reason)))

	c.JSON(http.StatusForbidden, dto.MapViolationToResponse(violation))
}
