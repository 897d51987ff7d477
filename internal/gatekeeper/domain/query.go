package domain

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// mutationToken must be present for the lexical check to reject a query.
const mutationToken = "mutation"

// MutatingVerbs are the verb tokens that, together with "mutation", mark query text
// as a write. Order determines which token is reported.
var MutatingVerbs = []string{"create", "update", "delete", "archive", "duplicate"}

// ValidateQueryText applies the lexical mutation heuristic to free-form query text.
// It fails only when the lower-cased text contains "mutation" and at least one of
// MutatingVerbs. This is a substring check, not a parser: text mentioning the
// tokens inside strings or comments is rejected too.
func ValidateQueryText(text string) error {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if !strings.Contains(lowered, mutationToken) {
		return nil
	}

	for _, verb := range MutatingVerbs {
		if strings.Contains(lowered, verb) {
			return NewReadOnlyViolation("GraphQL mutation detected: "+verb, ReasonMutationKeyword)
		}
	}

	return nil
}

// ValidateDocument parses query as a GraphQL document and rejects any mutation or
// subscription operation. Returns ErrInvalidQuery when the document does not parse.
func ValidateDocument(query string) error {
	doc, err := parser.ParseQuery(&ast.Source{Name: "query", Input: query})
	if err != nil {
		return apperrors.Wrap(ErrInvalidQuery, err.Error())
	}

	for _, op := range doc.Operations {
		if op.Operation == ast.Query {
			continue
		}
		name := op.Name
		if name == "" {
			name = "anonymous"
		}
		return NewReadOnlyViolation("GraphQL "+string(op.Operation)+": "+name, ReasonGraphQLMutation)
	}

	return nil
}
