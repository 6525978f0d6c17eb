package criterion

// The evaluation operations in this file and its siblings are stateless:
// each combines a materialized source slice, a built predicate, and an
// optional ordering into a result, with no caching and no shared state.
// Deterministic inputs give deterministic outputs. Negated evaluation is
// expressed by passing p.Not().
//
// Several OrderBy arguments chain as successive tie-breakers. Operations
// never mutate the source slice; ordered variants work on copies.

// Any reports whether at least one element matches.
func Any[T any](items []T, p Predicate[T]) bool {
	p.mustBeBuilt()
	for _, e := range items {
		if p.fn(e) {
			return true
		}
	}
	return false
}

// Count returns the number of matching elements.
func Count[T any](items []T, p Predicate[T]) int {
	p.mustBeBuilt()
	n := 0
	for _, e := range items {
		if p.fn(e) {
			n++
		}
	}
	return n
}

// All returns every matching element: filter, then order. Without an
// ordering, matches keep their stable source order. The result is
// always non-nil.
func All[T any](items []T, p Predicate[T], order ...OrderBy[T]) []T {
	p.mustBeBuilt()
	out := make([]T, 0, len(items))
	for _, e := range items {
		if p.fn(e) {
			out = append(out, e)
		}
	}
	sortInPlace(out, order)
	return out
}

// AllFailed returns every non-matching element, ordered like All. For
// any predicate, All and AllFailed partition the source exactly: each
// element lands in one of the two, never both.
func AllFailed[T any](items []T, p Predicate[T], order ...OrderBy[T]) []T {
	return All(items, p.Not(), order...)
}

// First returns the first matching element under the optional ordering,
// or ok=false when nothing matches.
func First[T any](items []T, p Predicate[T], order ...OrderBy[T]) (T, bool) {
	p.mustBeBuilt()
	src := applyOrder(items, order)
	for _, e := range src {
		if p.fn(e) {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// FirstFailed returns the first non-matching element under the optional
// ordering, or ok=false when everything matches.
func FirstFailed[T any](items []T, p Predicate[T], order ...OrderBy[T]) (T, bool) {
	return First(items, p.Not(), order...)
}

// Last returns the last matching element under the optional ordering,
// or ok=false when nothing matches. The source is fully materialized,
// so Last scans the ordered sequence from the end.
func Last[T any](items []T, p Predicate[T], order ...OrderBy[T]) (T, bool) {
	p.mustBeBuilt()
	src := applyOrder(items, order)
	for i := len(src) - 1; i >= 0; i-- {
		if p.fn(src[i]) {
			return src[i], true
		}
	}
	var zero T
	return zero, false
}

// LastFailed returns the last non-matching element under the optional
// ordering, or ok=false when everything matches.
func LastFailed[T any](items []T, p Predicate[T], order ...OrderBy[T]) (T, bool) {
	return Last(items, p.Not(), order...)
}

// FirstIndex returns the zero-based position of the first match within
// the ordered but unfiltered source, or -1 when nothing matches.
// Positions are relative to the sequence after ordering, so changing
// the ordering changes the reported index.
func FirstIndex[T any](items []T, p Predicate[T], order ...OrderBy[T]) int {
	p.mustBeBuilt()
	src := applyOrder(items, order)
	for i, e := range src {
		if p.fn(e) {
			return i
		}
	}
	return -1
}

// LastIndex returns the zero-based position of the last match within
// the ordered but unfiltered source, or -1 when nothing matches.
func LastIndex[T any](items []T, p Predicate[T], order ...OrderBy[T]) int {
	p.mustBeBuilt()
	src := applyOrder(items, order)
	for i := len(src) - 1; i >= 0; i-- {
		if p.fn(src[i]) {
			return i
		}
	}
	return -1
}
