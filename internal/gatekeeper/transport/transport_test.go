package transport

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
)

type upstream struct {
	server *httptest.Server
	calls  atomic.Int32
	body   atomic.Value
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		b, _ := io.ReadAll(r.Body)
		u.body.Store(string(b))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	t.Cleanup(u.server.Close)
	return u
}

func newClient(strict bool) *http.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	guard := usecase.NewGatekeeperUseCase(domain.MondayCatalog, nil, logger)
	return &http.Client{Transport: New(nil, guard, WithStrict(strict))}
}

func TestTransport_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		strict    bool
		body      string
		expectErr error
	}{
		{
			name: "query passes",
			body: `{"query":"query { boards(ids: [1]) { name } }"}`,
		},
		{
			name:      "mutation blocked",
			body:      `{"query":"mutation { create_item(board_id: 1, item_name: \"x\") { id } }"}`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name:      "batched mutation blocked",
			body:      `[{"query":"query { me { id } }"},{"query":"mutation { delete_item(item_id: 1) { id } }"}]`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name:      "raw text mutation blocked",
			body:      `mutation { archive_board(board_id: 1) { id } }`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name: "keyword-free mutation passes without strict",
			body: `{"query":"mutation { change_column_value(item_id: 1) { id } }"}`,
		},
		{
			name:      "keyword-free mutation blocked with strict",
			strict:    true,
			body:      `{"query":"mutation { change_column_value(item_id: 1) { id } }"}`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name:      "mutation hidden behind differently-cased duplicate key",
			body:      `{"query":"mutation { create_item(board_id: 1) { id } }","Query":"{ me { id } }"}`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name:      "mutation hidden behind differently-cased duplicate key with strict",
			strict:    true,
			body:      `{"Query":"{ me { id } }","query":"mutation { create_item(board_id: 1) { id } }"}`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name:      "mutation hidden behind exact duplicate key",
			body:      `{"query":"mutation { delete_item(item_id: 1) { id } }","query":"{ me { id } }"}`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name:      "mutation behind escaped key",
			body:      `{"\u0071uery":"mutation { create_item(board_id: 1) { id } }"}`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name:      "mutation in batched item with duplicate key",
			body:      `[{"query":"{ me { id } }"},{"QUERY":"mutation { archive_board(board_id: 1) { id } }","query":"{ me { id } }"}]`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name:      "non-string query value checked as text",
			body:      `{"query":["mutation { create_item(board_id: 1) { id } }"]}`,
			expectErr: apperrors.ErrReadOnlyViolation,
		},
		{
			name:   "read query with variables passes with strict",
			strict: true,
			body:   `{"query":"query Items($id: [ID!]) { items(ids: $id) { name } }","variables":{"id":["1"]}}`,
		},
		{
			name:      "unparseable query blocked with strict",
			strict:    true,
			body:      `{"query":"query { boards("}`,
			expectErr: domain.ErrInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := newUpstream(t)
			client := newClient(tt.strict)

			resp, err := client.Post(up.server.URL, "application/json", strings.NewReader(tt.body))

			if tt.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Equal(t, int32(0), up.calls.Load())
				return
			}

			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, int32(1), up.calls.Load())
			assert.Equal(t, tt.body, up.body.Load())
		})
	}
}

func TestTransport_NoBodyPassesThrough(t *testing.T) {
	up := newUpstream(t)

	resp, err := newClient(true).Get(up.server.URL)

	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, int32(1), up.calls.Load())
}

func TestTransport_QueryParameterBlocked(t *testing.T) {
	mutation := url.QueryEscape("mutation { delete_item(item_id: 1) { id } }")
	read := url.QueryEscape("{ me { id } }")

	tests := []struct {
		name  string
		query string
	}{
		{name: "single parameter", query: "?query=" + mutation},
		{name: "mutation in second duplicate", query: "?query=" + read + "&query=" + mutation},
		{name: "differently-cased parameter", query: "?query=" + read + "&Query=" + mutation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := newUpstream(t)

			_, err := newClient(false).Get(up.server.URL + tt.query)

			assert.ErrorIs(t, err, apperrors.ErrReadOnlyViolation)
			assert.Equal(t, int32(0), up.calls.Load())
		})
	}
}

func TestExtractQueries(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "single", body: `{"query":"query { me { id } }","variables":{}}`, want: []string{"query { me { id } }"}},
		{name: "batch", body: `[{"query":"a"},{"query":"b"}]`, want: []string{"a", "b"}},
		{name: "duplicate keys kept in order", body: `{"query":"a","Query":"b","query":"c"}`, want: []string{"a", "b", "c"}},
		{name: "not json", body: "not json", want: []string{"not json"}},
		{name: "trailing data", body: `{"query":"a"} mutation`, want: []string{`{"query":"a"} mutation`}},
		{name: "no query key", body: `{"operationName":"x"}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractQueries([]byte(tt.body)))
		})
	}
}
