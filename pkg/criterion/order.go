package criterion

import (
	"cmp"
	"slices"
)

// OrderTerm is the description of one ordering term: a member name and a
// direction. Translators consume these; see OrderBy.Terms.
type OrderTerm struct {
	Member string
	Desc   bool
}

// orderTerm pairs the description of a term with its comparator. The
// comparator already encodes direction.
type orderTerm[T any] struct {
	member  string
	desc    bool
	compare func(a, b T) int
}

// OrderBy is an immutable ordering: a primary term plus any number of
// tie-breakers applied in declaration order. The zero value means "no
// ordering" and leaves source order untouched. Sorting is stable, so
// elements equal under every term keep their relative source order.
//
// OrderBy values are safe to share; Then returns a new value.
type OrderBy[T any] struct {
	terms []orderTerm[T]
}

// Ascending orders by a field's value, smallest first.
func Ascending[T any, K cmp.Ordered](f Field[T, K]) OrderBy[T] {
	if f.Get == nil {
		panic("criterion: field accessor cannot be nil")
	}
	get := f.Get
	return OrderBy[T]{terms: []orderTerm[T]{{
		member:  f.Name,
		compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}}}
}

// Descending orders by a field's value, largest first.
func Descending[T any, K cmp.Ordered](f Field[T, K]) OrderBy[T] {
	if f.Get == nil {
		panic("criterion: field accessor cannot be nil")
	}
	get := f.Get
	return OrderBy[T]{terms: []orderTerm[T]{{
		member:  f.Name,
		desc:    true,
		compare: func(a, b T) int { return cmp.Compare(get(b), get(a)) },
	}}}
}

// AscendingKey orders by an unnamed key extractor, smallest first. The
// resulting ordering works everywhere in-memory but cannot be described
// to a translator; use Ascending with a named Field for that.
func AscendingKey[T any, K cmp.Ordered](key func(T) K) OrderBy[T] {
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	return OrderBy[T]{terms: []orderTerm[T]{{
		compare: func(a, b T) int { return cmp.Compare(key(a), key(b)) },
	}}}
}

// DescendingKey orders by an unnamed key extractor, largest first.
func DescendingKey[T any, K cmp.Ordered](key func(T) K) OrderBy[T] {
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	return OrderBy[T]{terms: []orderTerm[T]{{
		desc:    true,
		compare: func(a, b T) int { return cmp.Compare(key(b), key(a)) },
	}}}
}

// OrderingFunc orders by an arbitrary comparator returning the usual
// negative/zero/positive contract. The escape hatch for key types
// without a natural order, such as time.Time:
//
//	byCreated := criterion.OrderingFunc(func(a, b Event) int {
//		return a.Created.Compare(b.Created)
//	})
func OrderingFunc[T any](compare func(a, b T) int) OrderBy[T] {
	if compare == nil {
		panic("criterion: compare function cannot be nil")
	}
	return OrderBy[T]{terms: []orderTerm[T]{{compare: compare}}}
}

// Then appends the terms of next as tie-breakers after this ordering's
// terms, returning a new OrderBy. Neither receiver nor argument is
// modified.
func (o OrderBy[T]) Then(next OrderBy[T]) OrderBy[T] {
	merged := make([]orderTerm[T], 0, len(o.terms)+len(next.terms))
	merged = append(merged, o.terms...)
	merged = append(merged, next.terms...)
	return OrderBy[T]{terms: merged}
}

// IsZero reports whether the ordering has no terms.
func (o OrderBy[T]) IsZero() bool {
	return len(o.terms) == 0
}

// Terms returns the description of each term in order, for translators.
// Terms built from unnamed key extractors or comparators have no member
// name and report a *TranslationError.
func (o OrderBy[T]) Terms() ([]OrderTerm, error) {
	terms := make([]OrderTerm, 0, len(o.terms))
	for _, t := range o.terms {
		if t.member == "" {
			return nil, &TranslationError{Reason: "ordering term has no member name"}
		}
		terms = append(terms, OrderTerm{Member: t.member, Desc: t.desc})
	}
	return terms, nil
}

// compare applies the terms in order, returning the first non-zero
// verdict.
func (o OrderBy[T]) compare(a, b T) int {
	for _, t := range o.terms {
		if c := t.compare(a, b); c != 0 {
			return c
		}
	}
	return 0
}

// sortedCopy returns a stably sorted copy, leaving items untouched.
func (o OrderBy[T]) sortedCopy(items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, o.compare)
	return out
}

// mergeOrder folds a variadic ordering parameter into one OrderBy;
// several orderings chain as successive tie-breakers.
func mergeOrder[T any](order []OrderBy[T]) OrderBy[T] {
	if len(order) == 0 {
		return OrderBy[T]{}
	}
	merged := order[0]
	for _, o := range order[1:] {
		merged = merged.Then(o)
	}
	return merged
}

// applyOrder returns items sorted per order, or items unchanged when no
// ordering was given. The input slice is never mutated.
func applyOrder[T any](items []T, order []OrderBy[T]) []T {
	o := mergeOrder(order)
	if o.IsZero() {
		return items
	}
	return o.sortedCopy(items)
}

// sortInPlace stably sorts a slice the caller owns, when an ordering
// was given.
func sortInPlace[T any](items []T, order []OrderBy[T]) {
	o := mergeOrder(order)
	if o.IsZero() {
		return
	}
	slices.SortStableFunc(items, o.compare)
}
