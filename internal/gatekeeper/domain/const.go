// Package domain defines the read-only gatekeeper domain: operation catalogs,
// classification kinds, the read-only violation error and the lexical and
// structural checks applied to outgoing queries.
package domain

// Kind is the classification of an operation name against a catalog.
type Kind string

const (
	// KindRead marks an operation known to be side-effect-free.
	KindRead Kind = "read"

	// KindWrite marks an operation known to mutate remote state.
	KindWrite Kind = "write"

	// KindUnknown marks a name present in neither set. Unknown operations are denied.
	KindUnknown Kind = "unknown"
)

// Allowed reports whether operations of this kind may be executed.
func (k Kind) Allowed() bool {
	return k == KindRead
}

// Reason explains why an operation or query was rejected.
type Reason string

const (
	// ReasonWriteOperation is used when the name is in the write set.
	ReasonWriteOperation Reason = "write_operation"

	// ReasonUnknownOperation is used when the name is in neither set.
	ReasonUnknownOperation Reason = "unknown_operation"

	// ReasonMutationKeyword is used when query text matches the mutation heuristic.
	ReasonMutationKeyword Reason = "mutation_keyword"

	// ReasonGraphQLMutation is used when a parsed document declares a mutating operation.
	ReasonGraphQLMutation Reason = "graphql_mutation"
)
