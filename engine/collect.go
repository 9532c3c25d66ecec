package engine

import "slices"

// ============================================================================
// COLLECT — typed group-by with a combine policy
// ============================================================================
// Aggregate(items, key, value, combine) walks items once and folds each value
// into the accumulator of its group. Group order is first occurrence.
//
// Policies:
//   AppendAll     — every value, in input order
//   AppendUnique  — a value joins a group only if not already present
//   Sum           — numeric total, starting from zero
//   Count         — number of values seen
// ============================================================================

// Number is any numeric type Sum can total.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Combine folds one value into a group accumulator. A newly seen group starts
// from the zero value of A.
type Combine[V, A any] func(acc A, v V) A

// AppendAll keeps every value.
func AppendAll[V any]() Combine[V, []V] {
	return func(acc []V, v V) []V { return append(acc, v) }
}

// AppendUnique keeps a value only if an equal one is not already in the group.
func AppendUnique[V comparable]() Combine[V, []V] {
	return func(acc []V, v V) []V {
		if slices.Contains(acc, v) {
			return acc
		}
		return append(acc, v)
	}
}

// Sum adds values.
func Sum[N Number]() Combine[N, N] {
	return func(acc N, v N) N { return acc + v }
}

// Count counts values.
func Count[V any]() Combine[V, int] {
	return func(acc int, _ V) int { return acc + 1 }
}

// Aggregate groups items by key and folds value(item) into each group with
// combine.
func Aggregate[T any, K comparable, V, A any](items []T, key func(T) K, value func(T) V, combine Combine[V, A]) *OrderedMap[K, A] {
	out := NewOrderedMap[K, A]()
	for _, item := range items {
		k := key(item)
		acc, _ := out.Get(k)
		out.Set(k, combine(acc, value(item)))
	}
	return out
}

// GroupBy collects whole items per key.
func GroupBy[T any, K comparable](items []T, key func(T) K) *OrderedMap[K, []T] {
	return Aggregate(items, key, identity[T], AppendAll[T]())
}

// CountBy counts items per key.
func CountBy[T any, K comparable](items []T, key func(T) K) *OrderedMap[K, int] {
	return Aggregate(items, key, identity[T], Count[T]())
}

// Unique returns the distinct values of value(item) in first-seen order.
func Unique[T any, V comparable](items []T, value func(T) V) []V {
	seen := make(map[V]struct{}, len(items))
	out := make([]V, 0, len(items))
	for _, item := range items {
		v := value(item)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// FlatMap concatenates fn(item) for every item.
func FlatMap[T, U any](items []T, fn func(T) []U) []U {
	var out []U
	for _, item := range items {
		out = append(out, fn(item)...)
	}
	if out == nil {
		out = []U{}
	}
	return out
}

// Map projects every item.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Pair is a (key, value) tuple produced while flattening nested records.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// PairKey and PairValue are accessors for use with Aggregate.
func PairKey[K, V any](p Pair[K, V]) K   { return p.Key }
func PairValue[K, V any](p Pair[K, V]) V { return p.Value }

func identity[T any](t T) T { return t }
