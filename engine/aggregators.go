package engine

import (
	"cmp"
	"slices"
	"strings"
)

// ============================================================================
// AGGREGATORS — Grouping, Aggregation, and Sorting via RecordView
// ============================================================================
// Grouping produces SubViews (index lists into the parent view), so records
// are never copied. Group order is first-occurrence order of the grouping
// value; sorting afterwards is stable.
// ============================================================================

// Aggregation names a per-group reduction of a measure.
type Aggregation string

const (
	AggSum   Aggregation = "sum"
	AggCount Aggregation = "count"
	AggAvg   Aggregation = "avg"
	AggMax   Aggregation = "max"
	AggMin   Aggregation = "min"
)

// SortOrder names an ordering of aggregated groups.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortValueDesc SortOrder = "value_desc"
	SortValueAsc  SortOrder = "value_asc"
	SortLabelAsc  SortOrder = "label_asc"
	SortLabelDesc SortOrder = "label_desc"
)

var reducers = map[Aggregation]func(RecordView, string) float64{
	AggSum:   SumMeasure,
	AggCount: func(v RecordView, _ string) float64 { return float64(v.Len()) },
	AggAvg:   AvgMeasure,
	AggMax:   MaxMeasure,
	AggMin:   MinMeasure,
}

// GroupAndAggregate is the main entry point for the aggregation pipeline.
// Pipeline: group → aggregate → sort → limit.
//
// Each extra groupBy dimension nests one level of SubGroups. An unknown
// aggregation sums. A limit of 0 keeps every group.
func GroupAndAggregate(
	view RecordView,
	groupBy []string,
	measure string,
	aggregation Aggregation,
	sortBy SortOrder,
	limit int,
) []Group {
	if view.Len() == 0 {
		return nil
	}

	reduce, ok := reducers[aggregation]
	if !ok {
		reduce = SumMeasure
	}

	var groups []Group
	if len(groupBy) == 0 {
		groups = []Group{{Key: "all", Label: "Total", View: view}}
	} else {
		groups = groupByDimensions(view, groupBy)
	}

	aggregateGroups(groups, measure, reduce)
	SortGroups(groups, sortBy)

	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

// ============================================================================
// GROUPING
// ============================================================================

func groupByDimensions(view RecordView, dimensions []string) []Group {
	dim := dimensions[0]
	byValue := Aggregate(indices(view.Len()),
		func(i int) string { return view.Dimension(i, dim) },
		identity[int],
		AppendAll[int]())

	groups := make([]Group, 0, byValue.Len())
	for key, rows := range byValue.All() {
		g := Group{Key: key, Label: key, View: newSubView(view, rows)}
		if len(dimensions) > 1 {
			g.SubGroups = groupByDimensions(g.View, dimensions[1:])
		}
		groups = append(groups, g)
	}
	return groups
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// ============================================================================
// AGGREGATION
// ============================================================================

func aggregateGroups(groups []Group, measure string, reduce func(RecordView, string) float64) {
	for i := range groups {
		g := &groups[i]
		g.Count = g.View.Len()
		if g.Count > 0 {
			g.Value = reduce(g.View, measure)
		}
		aggregateGroups(g.SubGroups, measure, reduce)
	}
}

// SumMeasure sums a named measure across a view.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, measure)
	}
	return total
}

// AvgMeasure computes average of a named measure.
func AvgMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	return SumMeasure(view, measure) / float64(n)
}

// MaxMeasure returns the largest value of a named measure, 0 when empty.
func MaxMeasure(view RecordView, measure string) float64 {
	return measureAt(view, ArgMax(view, measure), measure)
}

// MinMeasure returns the smallest value of a named measure, 0 when empty.
func MinMeasure(view RecordView, measure string) float64 {
	return measureAt(view, ArgMin(view, measure), measure)
}

// ArgMax returns the index of the first record holding the largest value of
// a named measure, or -1 for an empty view.
func ArgMax(view RecordView, measure string) int {
	return argBest(view, measure, func(v, best float64) bool { return v > best })
}

// ArgMin returns the index of the first record holding the smallest value of
// a named measure, or -1 for an empty view.
func ArgMin(view RecordView, measure string) int {
	return argBest(view, measure, func(v, best float64) bool { return v < best })
}

// argBest keeps the earliest index; a later record must strictly beat it.
func argBest(view RecordView, measure string, beats func(v, best float64) bool) int {
	at := -1
	var best float64
	for i := 0; i < view.Len(); i++ {
		if v := view.Measure(i, measure); at < 0 || beats(v, best) {
			best, at = v, i
		}
	}
	return at
}

func measureAt(view RecordView, i int, measure string) float64 {
	if i < 0 {
		return 0
	}
	return view.Measure(i, measure)
}

// ============================================================================
// SORTING
// ============================================================================

// SortGroups sorts groups in place. Equal groups keep their order, and an
// unknown order leaves the slice untouched.
func SortGroups(groups []Group, sortBy SortOrder) {
	var compare func(a, b Group) int
	switch sortBy {
	case SortValueDesc:
		compare = func(a, b Group) int { return cmp.Compare(b.Value, a.Value) }
	case SortValueAsc:
		compare = func(a, b Group) int { return cmp.Compare(a.Value, b.Value) }
	case SortLabelAsc:
		compare = func(a, b Group) int { return strings.Compare(strings.ToLower(a.Key), strings.ToLower(b.Key)) }
	case SortLabelDesc:
		compare = func(a, b Group) int { return strings.Compare(strings.ToLower(b.Key), strings.ToLower(a.Key)) }
	default:
		return
	}
	slices.SortStableFunc(groups, compare)
}

// GroupValues flattens groups into an ordered key → value map.
func GroupValues(groups []Group) *OrderedMap[string, float64] {
	out := NewOrderedMap[string, float64]()
	for _, g := range groups {
		out.Set(g.Key, g.Value)
	}
	return out
}
