package engine

import "time"

// ============================================================================
// ENGINE TYPES
// ============================================================================

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group represents a grouped/aggregated result over a RecordView.
type Group struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Value     float64    `json:"value"`
	Count     int        `json:"count"`
	SubGroups []Group    `json:"subGroups,omitempty"`
	View      RecordView `json:"-"` // Sub-view for records in this group (zero-copy)
}

// ============================================================================
// QUERY — a named, zero-argument computation over a bound dataset
// ============================================================================

// Query is one registered dataset query. Run closes over its dataset and
// returns a sequence, mapping or scalar.
type Query struct {
	Name        string     `json:"name"`
	Dataset     string     `json:"dataset"`
	Description string     `json:"description"`
	Run         func() any `json:"-"`
}

// ============================================================================
// RESULT — Render-ready output
// ============================================================================

// Result is the executor's output for one query.
type Result struct {
	Query   string        `json:"query" yaml:"query"`
	Dataset string        `json:"dataset" yaml:"dataset"`
	Value   any           `json:"value" yaml:"value"`
	Elapsed time.Duration `json:"elapsedNs" yaml:"elapsedNs"`
}
