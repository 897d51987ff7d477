// Package transport provides an http.RoundTripper that refuses outgoing GraphQL
// mutations before they leave the process.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// QueryGuard validates GraphQL query text.
type QueryGuard interface {
	ValidateQueryText(ctx context.Context, text string) error
	ValidateDocument(ctx context.Context, query string) error
}

// Transport guards requests carrying a GraphQL payload. A request whose query fails
// validation is never passed to the next RoundTripper.
type Transport struct {
	next   http.RoundTripper
	guard  QueryGuard
	strict bool
}

const queryKey = "query"

// Option configures a Transport.
type Option func(*Transport)

// WithStrict also runs the parser-based document check after the keyword check.
func WithStrict(strict bool) Option {
	return func(t *Transport) {
		t.strict = strict
	}
}

// New wraps next. A nil next uses http.DefaultTransport.
func New(next http.RoundTripper, guard QueryGuard, opts ...Option) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	t := &Transport{next: next, guard: guard}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RoundTrip implements http.RoundTripper. The request body is read, validated and
// replaced by an identical copy on a cloned request, so next sees the original bytes.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	for key, values := range req.URL.Query() {
		if !strings.EqualFold(key, queryKey) {
			continue
		}
		for _, q := range values {
			if err := t.validate(ctx, q); err != nil {
				closeBody(req)
				return nil, err
			}
		}
	}

	if req.Body == nil || req.Body == http.NoBody {
		return t.next.RoundTrip(req)
	}

	body, err := io.ReadAll(req.Body)
	closeBody(req)
	if err != nil {
		return nil, err
	}

	for _, q := range extractQueries(body) {
		if err := t.validate(ctx, q); err != nil {
			return nil, err
		}
	}

	clone := req.Clone(ctx)
	clone.Body = io.NopCloser(bytes.NewReader(body))
	clone.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	clone.ContentLength = int64(len(body))

	return t.next.RoundTrip(clone)
}

func (t *Transport) validate(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if err := t.guard.ValidateQueryText(ctx, query); err != nil {
		return err
	}
	if t.strict {
		return t.guard.ValidateDocument(ctx, query)
	}
	return nil
}

// extractQueries returns every value stored under a key that case-folds to "query", for a
// JSON object or each object of a batched array. Duplicate and differently-cased keys are
// all returned, since upstream parsers disagree on which one wins. Bodies that are not
// JSON are returned as is so the keyword check still sees them.
func extractQueries(body []byte) []string {
	trimmed := bytes.TrimSpace(body)

	if queries, ok := objectQueries(trimmed); ok {
		return queries
	}

	var batch []json.RawMessage
	if err := json.Unmarshal(trimmed, &batch); err == nil {
		var queries []string
		for _, item := range batch {
			itemQueries, ok := objectQueries(item)
			if !ok {
				return []string{string(body)}
			}
			queries = append(queries, itemQueries...)
		}
		return queries
	}

	return []string{string(body)}
}

// objectQueries walks the top-level members of a JSON object token by token so that
// duplicate keys are not collapsed. A non-string value under a query key is returned
// as raw JSON text.
func objectQueries(data []byte) ([]string, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, false
	}

	var queries []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}
		if !strings.EqualFold(key, queryKey) {
			continue
		}

		var q string
		if err := json.Unmarshal(raw, &q); err != nil {
			q = string(raw)
		}
		queries = append(queries, q)
	}

	if tok, err := dec.Token(); err != nil || tok != json.Delim('}') {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return queries, true
}

func closeBody(req *http.Request) {
	if req.Body != nil {
		_ = req.Body.Close()
	}
}
