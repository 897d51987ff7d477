// Package usecase implements the read-only guard as application services.
package usecase

import (
	"context"

	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
)

// GatekeeperUseCase guards calls against a single operation catalog.
//
// Every check is fail-closed: a name that is neither a known read nor a known write
// is refused. Implementations hold no mutable state and are safe for concurrent use.
type GatekeeperUseCase interface {
	// CatalogName returns the name of the guarded catalog.
	CatalogName() string

	// ValidateOperation returns nil when operation is a known read. Known writes and
	// unknown names fail with *domain.ReadOnlyViolation.
	ValidateOperation(ctx context.Context, operation string) error

	// IsReadOperation reports whether operation is in the read set.
	IsReadOperation(operation string) bool

	// IsWriteOperation reports whether operation is in the write set.
	IsWriteOperation(operation string) bool

	// Classify returns read, write or unknown for operation.
	Classify(operation string) domain.Kind

	// ReadOperations returns the sorted read set.
	ReadOperations() []string

	// WriteOperations returns the sorted write set.
	WriteOperations() []string

	// ValidateQueryText applies the keyword heuristic to raw query text.
	ValidateQueryText(ctx context.Context, text string) error

	// ValidateDocument parses query as GraphQL and refuses mutations and subscriptions.
	ValidateDocument(ctx context.Context, query string) error

	// FilterTools keeps only the tools whose name is a known read, in order.
	FilterTools(ctx context.Context, tools []domain.Tool) []domain.Tool

	// ValidateChannelAccess refuses private channels, direct messages and, when an
	// allow-list is configured, channels outside it.
	ValidateChannelAccess(ctx context.Context, channelID string, channelType domain.ChannelType) error
}

// Gatekeepers resolves the GatekeeperUseCase for a catalog name.
type Gatekeepers interface {
	// Get returns the use case for catalog or domain.ErrCatalogNotFound.
	Get(catalog string) (GatekeeperUseCase, error)

	// Names returns the registered catalog names in sorted order.
	Names() []string
}

// Guard is the part of GatekeeperUseCase needed to wrap a call.
type Guard interface {
	ValidateOperation(ctx context.Context, operation string) error
}
