package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

func TestOperationName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "monday tool", input: "mcp_monday-mcp_get_board_info"},
		{name: "slack method", input: "conversations.history"},
		{name: "inner space", input: "get board", shouldErr: true},
		{name: "trailing newline", input: "chat.postMessage\n", shouldErr: true},
		{name: "slash", input: "api/v2/boards", shouldErr: true},
		{name: "empty is left to Required", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OperationName.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogName(t *testing.T) {
	assert.NoError(t, CatalogName.Validate("monday"))
	assert.NoError(t, CatalogName.Validate("slack"))
	assert.Error(t, CatalogName.Validate("Monday"))
	assert.Error(t, CatalogName.Validate("1monday"))
	assert.Error(t, CatalogName.Validate("mon day"))
}

func TestChannelID(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "public channel", input: "C024BE91L"},
		{name: "private group", input: "G012AB3CD"},
		{name: "direct message", input: "D0123ABCD"},
		{name: "lower case", input: "c024be91l", shouldErr: true},
		{name: "unknown prefix", input: "X024BE91L", shouldErr: true},
		{name: "too short", input: "C1", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ChannelID.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNoWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "no whitespace", input: "validstring"},
		{name: "leading whitespace", input: " validstring", shouldErr: true},
		{name: "trailing whitespace", input: "validstring ", shouldErr: true},
		{name: "internal spaces allowed", input: "valid string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NoWhitespace.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "valid string", input: "validstring"},
		{name: "only spaces", input: "   ", shouldErr: true},
		{name: "only tabs", input: "\t\t", shouldErr: true},
		{name: "mixed whitespace", input: " \t\n ", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(assert.AnError)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "invalid input")
}
