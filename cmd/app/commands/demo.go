package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/transport"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
	"github.com/allisson/gatekeeper/internal/payload"
)

const (
	demoReadOperation  = "mcp_monday-mcp_get_board_info"
	demoWriteOperation = "mcp_monday-mcp_create_item"
	demoEndpoint       = "https://api.monday.com/v2"
	demoItemCount      = 120
)

// offlineUpstream answers every request with an empty GraphQL result and counts the
// requests that reached it.
type offlineUpstream struct {
	calls atomic.Int32
}

func (u *offlineUpstream) RoundTrip(req *http.Request) (*http.Response, error) {
	u.calls.Add(1)
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"data":{}}`)),
		Request:    req,
	}, nil
}

type demoBoard struct {
	ID   string
	Name string
}

// RunDemo walks through the guard without touching the network: operation validation,
// classification, query checks, a guarded call, the guarding transport and payload
// control. It fails if any write gets through.
func RunDemo(
	ctx context.Context,
	guard usecase.GatekeeperUseCase,
	strict bool,
	payloadCfg payload.Config,
	logger *slog.Logger,
	io IOTuple,
) error {
	w := io.Writer
	section := func(title string) {
		_, _ = fmt.Fprintf(w, "\n== %s ==\n", title)
	}

	section("Operation validation")
	for _, op := range []string{
		demoReadOperation,
		demoWriteOperation,
		"mcp_monday-mcp_search",
		"mcp_monday-mcp_delete_item",
		"mcp_monday-mcp_unknown_operation",
	} {
		if err := guard.ValidateOperation(ctx, op); err != nil {
			_, _ = fmt.Fprintf(w, "  BLOCKED  %s (%s)\n", op, guard.Classify(op))
			continue
		}
		_, _ = fmt.Fprintf(w, "  ALLOWED  %s\n", op)
	}

	section("Classification")
	for _, op := range []string{demoReadOperation, demoWriteOperation, "mcp_monday-mcp_search"} {
		_, _ = fmt.Fprintf(w, "  %-6s %s\n", guard.Classify(op), op)
	}

	section("GraphQL query checks")
	for _, q := range demoQueries {
		if err := guard.ValidateQueryText(ctx, q.query); err != nil {
			_, _ = fmt.Fprintf(w, "  BLOCKED  %s: %v\n", q.label, err)
			continue
		}
		_, _ = fmt.Fprintf(w, "  ALLOWED  %s\n", q.label)
	}

	section("Guarded call")
	fakeBoards := func(context.Context, int) ([]demoBoard, error) {
		return []demoBoard{{ID: "123456", Name: "Test Board"}}, nil
	}
	if boards, err := usecase.GuardedCall(ctx, guard, logger, demoReadOperation, fakeBoards, 1); err == nil {
		_, _ = fmt.Fprintf(w, "  ALLOWED  %s returned %d board(s)\n", demoReadOperation, len(boards))
	} else {
		_, _ = fmt.Fprintf(w, "  BLOCKED  %s: %v\n", demoReadOperation, err)
	}
	if _, err := usecase.GuardedCall(ctx, guard, logger, demoWriteOperation, fakeBoards, 1); err != nil {
		_, _ = fmt.Fprintf(w, "  BLOCKED  %s: %v\n", demoWriteOperation, err)
	} else {
		return fmt.Errorf("write operation %q was not blocked", demoWriteOperation)
	}

	section("Guarding transport")
	if err := runTransportDemo(ctx, guard, strict, w); err != nil {
		return err
	}

	section("Payload control")
	return runPayloadDemo(payloadCfg, w)
}

var demoQueries = []struct {
	label string
	query string
}{
	{"read query", `query { boards(ids: [123456]) { name items_page { items { name } } } }`},
	{"mutation", `mutation { create_item(board_id: 123456, item_name: "New Item") { id } }`},
}

func runTransportDemo(ctx context.Context, guard usecase.GatekeeperUseCase, strict bool, w io.Writer) error {
	upstream := &offlineUpstream{}
	client := &http.Client{Transport: transport.New(upstream, guard, transport.WithStrict(strict))}

	for _, q := range demoQueries {
		body, err := json.Marshal(map[string]string{"query": q.query})
		if err != nil {
			return fmt.Errorf("failed to encode query: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, demoEndpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		before := upstream.calls.Load()
		resp, err := client.Do(req)
		if err != nil {
			var violation *domain.ReadOnlyViolation
			if !apperrors.As(err, &violation) {
				return fmt.Errorf("request failed: %w", err)
			}
			_, _ = fmt.Fprintf(w, "  BLOCKED  %s: %v (upstream calls: %d)\n", q.label, violation, upstream.calls.Load()-before)
			continue
		}
		_ = resp.Body.Close()
		_, _ = fmt.Fprintf(w, "  SENT     %s: HTTP %d (upstream calls: %d)\n", q.label, resp.StatusCode, upstream.calls.Load()-before)
	}

	if upstream.calls.Load() != 1 {
		return fmt.Errorf("expected only the read query to reach upstream, got %d request(s)", upstream.calls.Load())
	}
	return nil
}

func runPayloadDemo(cfg payload.Config, w io.Writer) error {
	items := make([]payload.Record, demoItemCount)
	for i := range items {
		items[i] = payload.Record{
			"id":     fmt.Sprintf("%d", 1000+i),
			"name":   fmt.Sprintf("Item %d", i+1),
			"status": "Working on it",
			"owner":  "someone@example.com",
		}
	}

	result, err := payload.Process(items, cfg)
	if err != nil {
		return fmt.Errorf("failed to process items: %w", err)
	}

	_, _ = fmt.Fprintf(w, "  %d item(s) in, %d out, ~%d tokens\n", result.OriginalCount, len(result.Items), result.TokenEstimate)
	if result.ShouldNarrow {
		_, _ = fmt.Fprintln(w, "  result is large: narrow the query with filters")
	}
	return nil
}
