package commands

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
)

// checkResult is the outcome of a single guard check.
type checkResult struct {
	Catalog string `json:"catalog"`
	Input   string `json:"input"`
	Kind    string `json:"kind,omitempty"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// newCheckResult builds a result from a guard error. Errors other than violations are
// returned unchanged so the caller can fail.
func newCheckResult(catalog, input string, err error) (checkResult, error) {
	result := checkResult{Catalog: catalog, Input: input, Allowed: err == nil}
	if err == nil {
		return result, nil
	}

	var violation *domain.ReadOnlyViolation
	if !apperrors.As(err, &violation) {
		return result, err
	}
	result.Reason = string(violation.Reason)
	result.Message = violation.Error()
	return result, nil
}

func printCheckResult(result checkResult, format string, io IOTuple) error {
	if format == formatJSON {
		return writeJSON(io.Writer, result)
	}

	if result.Allowed {
		_, _ = fmt.Fprintf(io.Writer, "ALLOWED  [%s] %s", result.Catalog, result.Input)
	} else {
		_, _ = fmt.Fprintf(io.Writer, "BLOCKED  [%s] %s (%s)", result.Catalog, result.Input, result.Reason)
	}
	if result.Kind != "" {
		_, _ = fmt.Fprintf(io.Writer, " kind=%s", result.Kind)
	}
	_, _ = fmt.Fprintln(io.Writer)
	if result.Message != "" {
		_, _ = fmt.Fprintf(io.Writer, "  %s\n", result.Message)
	}
	return nil
}

// RunCheckOperation validates operation names against the guard's catalog and prints
// one line per name. It returns ErrReadOnlyViolation when any name is blocked so the
// process exits non-zero.
func RunCheckOperation(
	ctx context.Context,
	guard usecase.GatekeeperUseCase,
	logger *slog.Logger,
	operations []string,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if len(operations) == 0 {
		return fmt.Errorf("at least one operation name is required")
	}

	results := make([]checkResult, 0, len(operations))
	blocked := 0
	for _, op := range operations {
		result, err := newCheckResult(guard.CatalogName(), op, guard.ValidateOperation(ctx, op))
		if err != nil {
			return fmt.Errorf("failed to validate operation: %w", err)
		}
		result.Kind = string(guard.Classify(op))
		if !result.Allowed {
			blocked++
		}
		results = append(results, result)
	}

	if format == formatJSON {
		if err := writeJSON(io.Writer, results); err != nil {
			return err
		}
	} else {
		for _, result := range results {
			_ = printCheckResult(result, format, io)
		}
	}

	logger.Debug("operations checked",
		slog.String("catalog", guard.CatalogName()),
		slog.Int("total", len(operations)),
		slog.Int("blocked", blocked),
	)

	if blocked > 0 {
		return apperrors.Wrapf(apperrors.ErrReadOnlyViolation, "%d of %d operation(s) blocked", blocked, len(operations))
	}
	return nil
}
