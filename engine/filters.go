package engine

import (
	"strings"
)

// ============================================================================
// FILTERS — Generic Dimension-Based Filtering via RecordView
// ============================================================================
// Single-pass filter: checks ALL dimension constraints per record in one loop.
// Returns a SubView (index list into parent) — zero data copy.
// ============================================================================

// Filters define which records to include.
// Keys are dimension names. Values are allowed (or, for Exclude, rejected)
// values. OR within a dimension, AND across dimensions. Empty = all.
// Values match exactly unless IgnoreCase is set.
type Filters struct {
	Dimensions map[string][]string `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Exclude    map[string][]string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	IgnoreCase bool                `json:"ignoreCase,omitempty" yaml:"ignoreCase,omitempty"`
}

// Only is shorthand for a single-dimension include filter.
func Only(dimension string, values ...string) Filters {
	return Filters{Dimensions: map[string][]string{dimension: values}}
}

// Except is shorthand for a single-dimension exclude filter.
func Except(dimension string, values ...string) Filters {
	return Filters{Exclude: map[string][]string{dimension: values}}
}

// HasFilter returns true if a specific dimension filter is set.
func (f Filters) HasFilter(dimension string) bool {
	if vals, ok := f.Dimensions[dimension]; ok && len(vals) > 0 {
		return true
	}
	vals, ok := f.Exclude[dimension]
	return ok && len(vals) > 0
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	for _, vals := range f.Exclude {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ApplyFilters returns a view of records matching all dimension filters.
// Dimensions are AND-combined; values within a dimension are OR-combined.
// A record is dropped when any Exclude dimension matches one of its values.
// Empty filter = no restriction (returns original view).
func ApplyFilters(view RecordView, filters Filters) RecordView {
	if filters.IsEmpty() {
		return view
	}

	fold := exact
	if filters.IgnoreCase {
		fold = strings.ToLower
	}
	include := valueSets(filters.Dimensions, fold)
	exclude := valueSets(filters.Exclude, fold)

	// Single pass: a record passes if it matches ALL include filters and no exclude filter
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if matchesAll(view, i, include, fold) && !matchesAny(view, i, exclude, fold) {
			indices = append(indices, i)
		}
	}

	return newSubView(view, indices)
}

// Where filters a view with an arbitrary predicate on the record index.
// Used when a condition is numeric rather than a dimension match.
func Where(view RecordView, keep func(i int) bool) RecordView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if keep(i) {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}

func matchesAll(view RecordView, i int, sets map[string]map[string]bool, fold func(string) string) bool {
	for dim, set := range sets {
		if !set[fold(view.Dimension(i, dim))] {
			return false
		}
	}
	return true
}

func matchesAny(view RecordView, i int, sets map[string]map[string]bool, fold func(string) string) bool {
	for dim, set := range sets {
		if set[fold(view.Dimension(i, dim))] {
			return true
		}
	}
	return false
}

func valueSets(dims map[string][]string, fold func(string) string) map[string]map[string]bool {
	sets := make(map[string]map[string]bool, len(dims))
	for dim, allowed := range dims {
		if len(allowed) == 0 {
			continue
		}
		set := make(map[string]bool, len(allowed))
		for _, v := range allowed {
			set[fold(v)] = true
		}
		sets[dim] = set
	}
	return sets
}

func exact(s string) string { return s }
