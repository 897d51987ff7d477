package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
)

// RunFilterTools reads a JSON array of tools ({"name","description"}) from toolsJSON
// or io.Reader and prints the ones the guard exposes, preserving order.
func RunFilterTools(
	ctx context.Context,
	guard usecase.GatekeeperUseCase,
	logger *slog.Logger,
	toolsJSON string,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	raw, err := readInput(toolsJSON, io.Reader)
	if err != nil {
		return err
	}

	var tools []domain.Tool
	if err := json.Unmarshal([]byte(raw), &tools); err != nil {
		return fmt.Errorf("failed to parse tools JSON: %w", err)
	}

	allowed := guard.FilterTools(ctx, tools)

	logger.Info("tools filtered",
		slog.String("catalog", guard.CatalogName()),
		slog.Int("total", len(tools)),
		slog.Int("allowed", len(allowed)),
	)

	if format == formatJSON {
		if allowed == nil {
			allowed = []domain.Tool{}
		}
		return writeJSON(io.Writer, allowed)
	}

	_, _ = fmt.Fprintf(io.Writer, "%d of %d tool(s) exposed for catalog %s\n", len(allowed), len(tools), guard.CatalogName())
	for _, tool := range allowed {
		if tool.Description != "" {
			_, _ = fmt.Fprintf(io.Writer, "  %s - %s\n", tool.Name, tool.Description)
		} else {
			_, _ = fmt.Fprintf(io.Writer, "  %s\n", tool.Name)
		}
	}
	return nil
}
