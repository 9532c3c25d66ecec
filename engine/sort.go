package engine

import "slices"

// SortedCopy returns a stably sorted copy of items; items is left untouched.
func SortedCopy[T any](items []T, cmp func(a, b T) int) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// MaxBy returns the first item for which no later item compares greater.
// The boolean is false for empty input.
func MaxBy[T any](items []T, cmp func(a, b T) int) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	for _, item := range items[1:] {
		if cmp(item, best) > 0 {
			best = item
		}
	}
	return best, true
}
