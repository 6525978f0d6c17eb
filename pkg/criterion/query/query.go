// Package query carries composed conditions to external executors.
//
// A Query is the fully-described form of a request: the description
// tree of a predicate plus ordering and a result window. Providers
// translate it into their own query language and execute it; the
// library itself never generates SQL or any other concrete syntax.
//
// Common use cases:
//   - Hand a composed condition to a database-backed repository
//   - Mirror the in-memory evaluator against a remote source
//   - Prove compiled and described forms agree via the Memory provider
//
// Composition failures surface where the Query is built: a predicate
// with opaque leaves reports *criterion.TranslationError, an unnamed
// ordering term likewise, and invalid page or top numbers report
// *criterion.ArgumentError. A Query that composed cleanly is fully
// translatable by construction.
package query

import (
	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/ast"
)

// Query is a composed, fully-described request. Where is the
// description tree (nil matches everything), Order lists tie-breaking
// terms in priority order, and Offset/Limit bound the result window
// (zero means unbounded).
type Query struct {
	Where  ast.Node
	Order  []criterion.OrderTerm
	Offset int
	Limit  int
}

// settings accumulates composition options before validation.
type settings[T any] struct {
	order    criterion.OrderBy[T]
	page     int
	pageSize int
	pageSet  bool
	top      int
	topSet   bool
}

// Option configures query composition.
type Option[T any] func(*settings[T])

// WithOrder attaches an ordering to the query. Later calls replace
// earlier ones.
func WithOrder[T any](order criterion.OrderBy[T]) Option[T] {
	return func(s *settings[T]) {
		s.order = order
	}
}

// WithPage requests one page of the result, pages starting at 1.
// Cannot be combined with WithTop.
func WithPage[T any](page, pageSize int) Option[T] {
	return func(s *settings[T]) {
		s.page = page
		s.pageSize = pageSize
		s.pageSet = true
	}
}

// WithTop caps the result at the first count rows.
// Cannot be combined with WithPage.
func WithTop[T any](count int) Option[T] {
	return func(s *settings[T]) {
		s.top = count
		s.topSet = true
	}
}

// From composes a Query from a built predicate and options.
//
// Returns *criterion.TranslationError if the predicate or any ordering
// term has no description form, and *criterion.ArgumentError for
// invalid page or top numbers or for combining WithPage with WithTop.
func From[T any](pred criterion.Predicate[T], opts ...Option[T]) (Query, error) {
	var s settings[T]
	for _, opt := range opts {
		opt(&s)
	}

	node, err := pred.Describe()
	if err != nil {
		return Query{}, err
	}

	q := Query{Where: node}

	if !s.order.IsZero() {
		terms, err := s.order.Terms()
		if err != nil {
			return Query{}, err
		}
		q.Order = terms
	}

	if s.pageSet && s.topSet {
		return Query{}, &criterion.ArgumentError{
			Name:   "options",
			Reason: "page and top cannot be combined",
		}
	}

	if s.pageSet {
		if s.page < 1 {
			return Query{}, &criterion.ArgumentError{
				Name:   "page",
				Reason: "must be at least 1",
			}
		}
		if s.pageSize < 1 {
			return Query{}, &criterion.ArgumentError{
				Name:   "pageSize",
				Reason: "must be at least 1",
			}
		}
		q.Offset = (s.page - 1) * s.pageSize
		q.Limit = s.pageSize
	}

	if s.topSet {
		if s.top < 1 {
			return Query{}, &criterion.ArgumentError{
				Name:   "count",
				Reason: "must be at least 1",
			}
		}
		q.Limit = s.top
	}

	return q, nil
}

// FromSpec composes a Query from a whole Specification: its predicate,
// ordering, and page or top window. Include paths are not part of the
// wire form; providers that support related data read them from the
// specification directly.
func FromSpec[T any](spec criterion.Specification[T]) (Query, error) {
	opts := []Option[T]{WithOrder[T](spec.Order())}
	if page, pageSize, ok := spec.Page(); ok {
		opts = append(opts, WithPage[T](page, pageSize))
	}
	if count, ok := spec.Top(); ok {
		opts = append(opts, WithTop[T](count))
	}
	return From(spec.Predicate(), opts...)
}
