package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
)

// RunCheckQuery runs the keyword check on a GraphQL query, plus the parser-based
// document check when strict is set. The query comes from the flag or, when empty
// or "-", from io.Reader. A blocked query is printed and returned as an error.
func RunCheckQuery(
	ctx context.Context,
	guard usecase.GatekeeperUseCase,
	logger *slog.Logger,
	query string,
	strict bool,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	query, err := readInput(query, io.Reader)
	if err != nil {
		return err
	}

	checkErr := guard.ValidateQueryText(ctx, query)
	if checkErr == nil && strict {
		checkErr = guard.ValidateDocument(ctx, query)
	}

	result, err := newCheckResult(guard.CatalogName(), summarizeQuery(query), checkErr)
	if err != nil {
		return fmt.Errorf("failed to validate query: %w", err)
	}
	if err := printCheckResult(result, format, io); err != nil {
		return err
	}

	logger.Debug("query checked",
		slog.String("catalog", guard.CatalogName()),
		slog.Bool("strict", strict),
		slog.Bool("allowed", result.Allowed),
	)

	return checkErr
}

// summarizeQuery collapses whitespace and truncates long queries for display.
func summarizeQuery(query string) string {
	const maxLen = 80

	s := strings.Join(strings.Fields(query), " ")
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
