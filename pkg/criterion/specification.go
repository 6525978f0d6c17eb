package criterion

import "slices"

// Specification bundles a built predicate with ordering, paging, and
// include-path metadata, so one value can carry a whole request to a
// storage adapter or query executor.
//
// A Specification is an immutable value: the With methods return
// modified copies, and the original is never changed. Like the
// predicate it carries, it is safe to share freely once built.
//
//	spec := criterion.NewSpecification(adults).
//		WithOrder(criterion.Ascending(name)).
//		WithPage(1, 20)
type Specification[T any] struct {
	pred     Predicate[T]
	order    OrderBy[T]
	page     int
	pageSize int
	pageSet  bool
	top      int
	topSet   bool
	includes []string
}

// NewSpecification creates a specification around a built predicate.
// Panics if p is the zero Predicate.
func NewSpecification[T any](p Predicate[T]) Specification[T] {
	p.mustBeBuilt()
	return Specification[T]{pred: p}
}

// WithOrder returns a copy carrying the given ordering.
func (s Specification[T]) WithOrder(o OrderBy[T]) Specification[T] {
	s.order = o
	return s
}

// WithPage returns a copy requesting one page of the result. Values are
// validated where the specification is consumed, so an adapter can
// report a *ArgumentError through its usual error path.
func (s Specification[T]) WithPage(page, pageSize int) Specification[T] {
	s.page = page
	s.pageSize = pageSize
	s.pageSet = true
	return s
}

// WithTop returns a copy requesting only the first count results.
func (s Specification[T]) WithTop(count int) Specification[T] {
	s.top = count
	s.topSet = true
	return s
}

// WithIncludes returns a copy carrying include paths: names of related
// data the consumer should load alongside each result. Adapters without
// a notion of related data ignore them.
func (s Specification[T]) WithIncludes(paths ...string) Specification[T] {
	s.includes = slices.Clone(paths)
	return s
}

// Predicate returns the built condition.
func (s Specification[T]) Predicate() Predicate[T] {
	return s.pred
}

// Order returns the ordering; the zero OrderBy means none was set.
func (s Specification[T]) Order() OrderBy[T] {
	return s.order
}

// Page returns the requested page window. ok is false when no paging
// was requested.
func (s Specification[T]) Page() (page, pageSize int, ok bool) {
	return s.page, s.pageSize, s.pageSet
}

// Top returns the requested result cap. ok is false when none was set.
func (s Specification[T]) Top() (count int, ok bool) {
	return s.top, s.topSet
}

// Includes returns a copy of the include paths.
func (s Specification[T]) Includes() []string {
	return slices.Clone(s.includes)
}
