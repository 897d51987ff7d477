package dto

import (
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
)

// CatalogResponse summarizes a catalog.
type CatalogResponse struct {
	Name       string `json:"name"`
	ReadCount  int    `json:"read_count"`
	WriteCount int    `json:"write_count"`
}

// MapGatekeeperToCatalogResponse converts a use case to its catalog summary.
func MapGatekeeperToCatalogResponse(uc usecase.GatekeeperUseCase) CatalogResponse {
	return CatalogResponse{
		Name:       uc.CatalogName(),
		ReadCount:  len(uc.ReadOperations()),
		WriteCount: len(uc.WriteOperations()),
	}
}

// ListCatalogsResponse lists the registered catalogs.
type ListCatalogsResponse struct {
	Data []CatalogResponse `json:"data"`
}

// OperationResponse is the classification of one operation name.
type OperationResponse struct {
	Name    string      `json:"name"`
	Kind    domain.Kind `json:"kind"`
	Allowed bool        `json:"allowed"`
}

// NewOperationResponse builds the response for name classified as kind.
func NewOperationResponse(name string, kind domain.Kind) OperationResponse {
	return OperationResponse{Name: name, Kind: kind, Allowed: kind.Allowed()}
}

// ListOperationsResponse is a page of a catalog's operations.
type ListOperationsResponse struct {
	Catalog string              `json:"catalog"`
	Data    []OperationResponse `json:"data"`
	Total   int                 `json:"total"`
	Offset  int                 `json:"offset"`
	Limit   int                 `json:"limit"`
}

// ViolationResponse is returned with 403 when the read-only guard refuses a call.
type ViolationResponse struct {
	Error     string        `json:"error"`
	Message   string        `json:"message"`
	Operation string        `json:"operation"`
	Reason    domain.Reason `json:"reason"`
}

// MapViolationToResponse converts a violation to its API response.
func MapViolationToResponse(v *domain.ReadOnlyViolation) ViolationResponse {
	return ViolationResponse{
		Error:     "read_only_violation",
		Message:   v.Error(),
		Operation: v.Operation,
		Reason:    v.Reason,
	}
}

// ValidateQueryResponse reports an accepted query.
type ValidateQueryResponse struct {
	Allowed bool `json:"allowed"`
	Strict  bool `json:"strict"`
}

// FilterToolsResponse lists the tools kept and the names dropped.
type FilterToolsResponse struct {
	Tools   []domain.Tool `json:"tools"`
	Dropped []string      `json:"dropped"`
}

// ValidateChannelResponse reports an accessible channel.
type ValidateChannelResponse struct {
	ChannelID string `json:"channel_id"`
	Allowed   bool   `json:"allowed"`
}
