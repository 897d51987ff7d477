// Package payload trims read results before they are handed to a caller with a
// limited context budget.
package payload

import (
	"encoding/json"
)

const (
	// DefaultMaxRecords is the number of records kept when no limit is configured.
	DefaultMaxRecords = 30
	// MaxRecordsCap is the hard upper bound on kept records.
	MaxRecordsCap = 50
	// DefaultTriggerNarrowAt is the result size above which narrowing is advised.
	DefaultTriggerNarrowAt = 100

	charsPerToken = 4
)

// Record is one item of a read result.
type Record = map[string]any

// Config controls payload processing. Zero values select the defaults.
type Config struct {
	MaxRecords      int
	TriggerNarrowAt int
	SelectFields    []string
}

// Result is the processed payload plus metadata about what was removed.
type Result struct {
	Items         []Record `json:"items"`
	OriginalCount int      `json:"original_count"`
	TokenEstimate int      `json:"token_estimate"`
	ShouldNarrow  bool     `json:"should_narrow"`
}

func (c Config) maxRecords() int {
	switch {
	case c.MaxRecords <= 0:
		return DefaultMaxRecords
	case c.MaxRecords > MaxRecordsCap:
		return MaxRecordsCap
	default:
		return c.MaxRecords
	}
}

func (c Config) triggerNarrowAt() int {
	if c.TriggerNarrowAt <= 0 {
		return DefaultTriggerNarrowAt
	}
	return c.TriggerNarrowAt
}

// Limit returns the first MaxRecords items. Items are assumed to be sorted by relevance.
func Limit(items []Record, cfg Config) []Record {
	if len(items) == 0 {
		return []Record{}
	}
	limit := cfg.maxRecords()
	if len(items) <= limit {
		return items
	}
	return items[:limit]
}

// SelectFields keeps only id, name and the given fields of every item. With no
// fields the items are returned unchanged.
func SelectFields(items []Record, fields []string) []Record {
	if len(items) == 0 || len(fields) == 0 {
		return items
	}

	out := make([]Record, 0, len(items))
	for _, item := range items {
		filtered := make(Record, len(fields)+2)
		for _, key := range append([]string{"id", "name"}, fields...) {
			if v, ok := item[key]; ok {
				filtered[key] = v
			}
		}
		out = append(out, filtered)
	}
	return out
}

// EstimateTokens approximates the token count of v as one token per four characters
// of its compact JSON encoding, rounded up.
func EstimateTokens(v any) (int, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	return (len(b) + charsPerToken - 1) / charsPerToken, nil
}

// ShouldNarrow reports whether a result of recordCount items is large enough that the
// caller should narrow its query.
func ShouldNarrow(recordCount int, cfg Config) bool {
	return recordCount > cfg.triggerNarrowAt()
}

// Process selects fields, limits the records and estimates the token cost of what is left.
func Process(items []Record, cfg Config) (*Result, error) {
	processed := Limit(SelectFields(items, cfg.SelectFields), cfg)

	tokens, err := EstimateTokens(processed)
	if err != nil {
		return nil, err
	}

	return &Result{
		Items:         processed,
		OriginalCount: len(items),
		TokenEstimate: tokens,
		ShouldNarrow:  ShouldNarrow(len(items), cfg),
	}, nil
}
