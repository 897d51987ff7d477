// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

var (
	// operationNameRegex matches MCP tool names and Slack API methods
	operationNameRegex = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

	// catalogNameRegex matches lower-case catalog identifiers
	catalogNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_\-]*$`)

	// channelIDRegex matches Slack conversation IDs
	channelIDRegex = regexp.MustCompile(`^[CGD][A-Z0-9]{2,}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// OperationName validates the character set of an operation name. It only rejects
// malformed input; whether the name is allowed is decided by a catalog.
var OperationName = validation.NewStringRuleWithError(
	func(s string) bool {
		return operationNameRegex.MatchString(s)
	},
	validation.NewError("validation_operation_name", "must contain only letters, digits, '_', '.' or '-'"),
)

// CatalogName validates a catalog identifier
var CatalogName = validation.NewStringRuleWithError(
	func(s string) bool {
		return catalogNameRegex.MatchString(s)
	},
	validation.NewError("validation_catalog_name", "must be a lower-case identifier"),
)

// ChannelID validates a Slack conversation ID
var ChannelID = validation.NewStringRuleWithError(
	func(s string) bool {
		return channelIDRegex.MatchString(s)
	},
	validation.NewError("validation_channel_id", "must be a valid channel ID"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
