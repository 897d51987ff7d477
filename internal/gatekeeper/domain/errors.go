package domain

import (
	"fmt"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// Gatekeeper errors.
var (
	// ErrCatalogNotFound indicates the requested operation catalog is not registered.
	ErrCatalogNotFound = apperrors.Wrap(apperrors.ErrNotFound, "catalog not found")

	// ErrInvalidCatalog indicates a catalog breaks the disjoint/non-empty invariant.
	ErrInvalidCatalog = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid catalog")

	// ErrInvalidQuery indicates a GraphQL document could not be parsed.
	ErrInvalidQuery = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid graphql query")
)

// ReadOnlyViolation is returned when a write or unknown operation, or a mutating
// query, is attempted. Operation holds the offending operation name or the matched token.
type ReadOnlyViolation struct {
	Operation string
	Reason    Reason
}

// NewReadOnlyViolation creates a ReadOnlyViolation for the given operation and reason.
func NewReadOnlyViolation(operation string, reason Reason) *ReadOnlyViolation {
	return &ReadOnlyViolation{Operation: operation, Reason: reason}
}

func (e *ReadOnlyViolation) Error() string {
	switch e.Reason {
	case ReasonUnknownOperation:
		return fmt.Sprintf("unknown operation %q is blocked in read-only mode", e.Operation)
	case ReasonMutationKeyword, ReasonGraphQLMutation:
		return fmt.Sprintf("%s is blocked in read-only mode", e.Operation)
	default:
		return fmt.Sprintf("write operation %q is blocked in read-only mode", e.Operation)
	}
}

// Unwrap allows errors.Is(err, apperrors.ErrReadOnlyViolation) and ErrForbidden checks.
func (e *ReadOnlyViolation) Unwrap() error {
	return apperrors.ErrReadOnlyViolation
}

// ChannelAccessDenied is returned when a channel may not be read from.
type ChannelAccessDenied struct {
	ChannelID string
	Reason    string
}

func (e *ChannelAccessDenied) Error() string {
	return fmt.Sprintf("access denied to channel %s: %s", e.ChannelID, e.Reason)
}

// Unwrap maps channel denials to ErrForbidden.
func (e *ChannelAccessDenied) Unwrap() error {
	return apperrors.ErrForbidden
}
