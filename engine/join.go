package engine

// ============================================================================
// JOIN — match two collections on a shared key
// ============================================================================
// The secondary collection is indexed once (key → records in input order),
// then each primary record looks up its matches. Output follows primary order.
// ============================================================================

// Match is one primary record with every secondary record sharing its key.
type Match[L, R any] struct {
	Left  L
	Right []R
}

// Index builds a key → records lookup preserving input order within a key.
func Index[T any, K comparable](items []T, key func(T) K) map[K][]T {
	idx := make(map[K][]T, len(items))
	for _, item := range items {
		k := key(item)
		idx[k] = append(idx[k], item)
	}
	return idx
}

// Join matches each left record with the right records whose key equals its
// own. Left records with no match are omitted.
func Join[L, R any, K comparable](left []L, right []R, leftKey func(L) K, rightKey func(R) K) []Match[L, R] {
	idx := Index(right, rightKey)
	out := make([]Match[L, R], 0, len(left))
	for _, l := range left {
		if matches := idx[leftKey(l)]; len(matches) > 0 {
			out = append(out, Match[L, R]{Left: l, Right: matches})
		}
	}
	return out
}

// JoinMany is Join for a left record that references several keys (e.g. a
// character holding a list of weapon names). Right records are returned in
// reference order; unknown references are skipped.
func JoinMany[L, R any, K comparable](left []L, right []R, leftKeys func(L) []K, rightKey func(R) K) []Match[L, R] {
	idx := Index(right, rightKey)
	out := make([]Match[L, R], 0, len(left))
	for _, l := range left {
		var matches []R
		for _, k := range leftKeys(l) {
			matches = append(matches, idx[k]...)
		}
		if len(matches) > 0 {
			out = append(out, Match[L, R]{Left: l, Right: matches})
		}
	}
	return out
}

// AntiJoin returns the left records with no match on the right.
func AntiJoin[L, R any, K comparable](left []L, right []R, leftKey func(L) K, rightKeys func(R) []K) []L {
	seen := make(map[K]struct{})
	for _, r := range right {
		for _, k := range rightKeys(r) {
			seen[k] = struct{}{}
		}
	}
	out := make([]L, 0, len(left))
	for _, l := range left {
		if _, ok := seen[leftKey(l)]; !ok {
			out = append(out, l)
		}
	}
	return out
}
