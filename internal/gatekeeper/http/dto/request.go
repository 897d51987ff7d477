// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	customValidation "github.com/allisson/gatekeeper/internal/validation"
)

// maxQueryLength bounds the size of query text accepted for validation.
const maxQueryLength = 100_000

// ValidateOperationRequest asks whether an operation may be called.
type ValidateOperationRequest struct {
	Name string `json:"name"`
}

// Validate checks if the validate operation request is valid.
func (r *ValidateOperationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			customValidation.OperationName,
			validation.Length(1, 255),
		),
	)
}

// ValidateQueryRequest asks whether GraphQL query text is read-only. Strict overrides
// the server default for the parser-based check.
type ValidateQueryRequest struct {
	Query  string `json:"query"`
	Strict *bool  `json:"strict,omitempty"`
}

// Validate checks if the validate query request is valid.
func (r *ValidateQueryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Query,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, maxQueryLength),
		),
	)
}

// FilterToolsRequest carries the tool list advertised by an MCP server.
type FilterToolsRequest struct {
	Tools []domain.Tool `json:"tools"`
}

// Validate checks if the filter tools request is valid.
func (r *FilterToolsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Tools,
			validation.NotNil,
			validation.Each(validation.By(validateTool)),
		),
	)
}

func validateTool(value interface{}) error {
	tool, ok := value.(domain.Tool)
	if !ok {
		return validation.NewError("validation_tool_type", "must be a tool")
	}
	return validation.Validate(tool.Name, validation.Required, customValidation.NotBlank)
}

// ValidateChannelRequest asks whether a Slack channel may be read.
type ValidateChannelRequest struct {
	ChannelID   string `json:"channel_id"`
	ChannelType string `json:"channel_type"`
}

// Validate checks if the validate channel request is valid.
func (r *ValidateChannelRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ChannelID,
			validation.Required,
			customValidation.ChannelID,
		),
		validation.Field(&r.ChannelType,
			validation.In(
				string(domain.ChannelPublic),
				string(domain.ChannelPrivate),
				string(domain.ChannelIM),
				string(domain.ChannelMPIM),
			),
		),
	)
}

// ProcessPayloadRequest carries a read result to trim.
type ProcessPayloadRequest struct {
	Items        []map[string]any `json:"items"`
	SelectFields []string         `json:"select_fields"`
	MaxRecords   int              `json:"max_records"`
}

// Validate checks if the process payload request is valid.
func (r *ProcessPayloadRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Items, validation.NotNil),
		validation.Field(&r.SelectFields, validation.Each(validation.Required, customValidation.NoWhitespace)),
		validation.Field(&r.MaxRecords, validation.Min(0)),
	)
}
