package criterion

import (
	"golang.org/x/exp/constraints"
)

// Number constrains aggregation projections to types carrying ordering,
// arithmetic, and a zero value. The machine numeric types satisfy it;
// each aggregation is written once against the capability rather than
// once per type.
type Number interface {
	constraints.Integer | constraints.Float
}

// SumBy filters, projects each match through sel, and sums. The empty
// filtered set sums to zero, the natural identity.
//
// Panics if sel is nil.
func SumBy[T any, N Number](items []T, p Predicate[T], sel func(T) N) N {
	p.mustBeBuilt()
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	var sum N
	for _, e := range items {
		if p.fn(e) {
			sum += sel(e)
		}
	}
	return sum
}

// MinBy filters, projects, and returns the smallest value. The empty
// filtered set has no minimum and reports a *EmptyResultError.
//
// Panics if sel is nil.
func MinBy[T any, N Number](items []T, p Predicate[T], sel func(T) N) (N, error) {
	p.mustBeBuilt()
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	var best N
	found := false
	for _, e := range items {
		if !p.fn(e) {
			continue
		}
		v := sel(e)
		if !found || v < best {
			best = v
			found = true
		}
	}
	if !found {
		return best, &EmptyResultError{Op: "minimum"}
	}
	return best, nil
}

// MaxBy filters, projects, and returns the largest value. The empty
// filtered set has no maximum and reports a *EmptyResultError.
//
// Panics if sel is nil.
func MaxBy[T any, N Number](items []T, p Predicate[T], sel func(T) N) (N, error) {
	p.mustBeBuilt()
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	var best N
	found := false
	for _, e := range items {
		if !p.fn(e) {
			continue
		}
		v := sel(e)
		if !found || v > best {
			best = v
			found = true
		}
	}
	if !found {
		return best, &EmptyResultError{Op: "maximum"}
	}
	return best, nil
}

// AverageBy filters, projects, and returns the mean as a float64
// regardless of the projected type, so integer projections do not
// truncate. The empty filtered set has no mean and reports a
// *EmptyResultError.
//
// Panics if sel is nil.
func AverageBy[T any, N Number](items []T, p Predicate[T], sel func(T) N) (float64, error) {
	p.mustBeBuilt()
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	var sum float64
	n := 0
	for _, e := range items {
		if p.fn(e) {
			sum += float64(sel(e))
			n++
		}
	}
	if n == 0 {
		return 0, &EmptyResultError{Op: "average"}
	}
	return sum / float64(n), nil
}

// Aggregate filters, projects, and folds the values pairwise with
// combine, seeded by the first projected value. The empty filtered set
// has no seed and reports a *EmptyResultError rather than inventing an
// identity for an arbitrary reduction.
//
// Panics if sel or combine is nil.
func Aggregate[T any, N Number](items []T, p Predicate[T], sel func(T) N, combine func(N, N) N) (N, error) {
	p.mustBeBuilt()
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	if combine == nil {
		panic("criterion: combine function cannot be nil")
	}
	var acc N
	found := false
	for _, e := range items {
		if !p.fn(e) {
			continue
		}
		v := sel(e)
		if !found {
			acc = v
			found = true
			continue
		}
		acc = combine(acc, v)
	}
	if !found {
		return acc, &EmptyResultError{Op: "aggregate"}
	}
	return acc, nil
}
