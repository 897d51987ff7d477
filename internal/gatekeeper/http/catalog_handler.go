package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/http/dto"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
	"github.com/allisson/gatekeeper/internal/httputil"
	customValidation "github.com/allisson/gatekeeper/internal/validation"
)

// CatalogHandler serves catalog listings and operation checks.
type CatalogHandler struct {
	gatekeepers usecase.Gatekeepers
	logger      *slog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(gatekeepers usecase.Gatekeepers, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		gatekeepers: gatekeepers,
		logger:      logger,
	}
}

// gatekeeper resolves the :catalog parameter, writing 422 when it is malformed and
// 404 when it is unknown.
func (h *CatalogHandler) gatekeeper(c *gin.Context) (usecase.GatekeeperUseCase, bool) {
	catalog := c.Param("catalog")
	if err := validation.Validate(catalog, validation.Required, customValidation.CatalogName); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}

	uc, err := h.gatekeepers.Get(catalog)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, false
	}
	return uc, true
}

// ListCatalogsHandler lists the registered catalogs with their set sizes.
// GET /v1/catalogs
func (h *CatalogHandler) ListCatalogsHandler(c *gin.Context) {
	names := h.gatekeepers.Names()
	response := dto.ListCatalogsResponse{Data: make([]dto.CatalogResponse, 0, len(names))}

	for _, name := range names {
		uc, err := h.gatekeepers.Get(name)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		response.Data = append(response.Data, dto.MapGatekeeperToCatalogResponse(uc))
	}

	c.JSON(http.StatusOK, response)
}

// ListOperationsHandler returns a page of the catalog's operations sorted by name.
// GET /v1/catalogs/:catalog/operations?kind=read|write&offset=0&limit=50
func (h *CatalogHandler) ListOperationsHandler(c *gin.Context) {
	uc, ok := h.gatekeeper(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var operations []dto.OperationResponse
	switch kind := domain.Kind(c.Query("kind")); kind {
	case domain.KindRead:
		operations = toOperationResponses(uc.ReadOperations(), domain.KindRead)
	case domain.KindWrite:
		operations = toOperationResponses(uc.WriteOperations(), domain.KindWrite)
	case "":
		operations = append(
			toOperationResponses(uc.ReadOperations(), domain.KindRead),
			toOperationResponses(uc.WriteOperations(), domain.KindWrite)...,
		)
	default:
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid kind parameter: must be read or write"), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ListOperationsResponse{
		Catalog: uc.CatalogName(),
		Data:    httputil.Page(operations, offset, limit),
		Total:   len(operations),
		Offset:  offset,
		Limit:   limit,
	})
}

// GetOperationHandler classifies a single operation name without refusing it.
// GET /v1/catalogs/:catalog/operations/:name
func (h *CatalogHandler) GetOperationHandler(c *gin.Context) {
	uc, ok := h.gatekeeper(c)
	if !ok {
		return
	}

	name := c.Param("name")
	c.JSON(http.StatusOK, dto.NewOperationResponse(name, uc.Classify(name)))
}

// ValidateOperationHandler checks whether an operation may be called.
// POST /v1/catalogs/:catalog/operations/validate
// Returns 200 for reads and 403 with the violation for writes and unknown names.
func (h *CatalogHandler) ValidateOperationHandler(c *gin.Context) {
	uc, ok := h.gatekeeper(c)
	if !ok {
		return
	}

	var req dto.ValidateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := uc.ValidateOperation(c.Request.Context(), req.Name); err != nil {
		handleGuardError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewOperationResponse(req.Name, domain.KindRead))
}

// FilterToolsHandler keeps only the tools the catalog allows.
// POST /v1/catalogs/:catalog/tools/filter
func (h *CatalogHandler) FilterToolsHandler(c *gin.Context) {
	uc, ok := h.gatekeeper(c)
	if !ok {
		return
	}

	var req dto.FilterToolsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	allowed := uc.FilterTools(c.Request.Context(), req.Tools)

	kept := make(map[string]struct{}, len(allowed))
	for _, tool := range allowed {
		kept[tool.Name] = struct{}{}
	}
	dropped := make([]string, 0, len(req.Tools)-len(allowed))
	for _, tool := range req.Tools {
		if _, ok := kept[tool.Name]; !ok {
			dropped = append(dropped, tool.Name)
		}
	}

	c.JSON(http.StatusOK, dto.FilterToolsResponse{Tools: allowed, Dropped: dropped})
}

func toOperationResponses(names []string, kind domain.Kind) []dto.OperationResponse {
	out := make([]dto.OperationResponse, 0, len(names))
	for _, name := range names {
		out = append(out, dto.NewOperationResponse(name, kind))
	}
	return out
}
