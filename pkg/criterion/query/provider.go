package query

import (
	"context"
	"fmt"
	"slices"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/ast"
)

// Provider translates and executes composed queries against a data
// source. Implementations materialize complete result sets; the
// library never holds a partially-consumed cursor.
type Provider[T any] interface {
	// Select returns the rows matching the query, ordered and
	// windowed as the query requests.
	Select(ctx context.Context, q Query) ([]T, error)

	// Count returns the number of rows Select would return.
	Count(ctx context.Context, q Query) (int, error)
}

// Schema maps member names to accessor functions, giving dynamic
// interpretation a way to resolve the members a description tree
// names against a concrete entity.
type Schema[T any] map[string]func(T) any

// NewSchema returns an empty schema. Populate it with Bind.
func NewSchema[T any]() Schema[T] {
	return make(Schema[T])
}

// Bind registers a field accessor under the field's member name.
// Panics if the field has no name.
func Bind[T, V any](s Schema[T], f criterion.Field[T, V]) {
	if f.Name == "" {
		panic("query: cannot bind an unnamed field")
	}
	get := f.Get
	s[f.Name] = func(e T) any { return get(e) }
}

// Binding registers one member in a schema under construction.
// Produced by Member; consumed by SchemaOf.
type Binding[T any] func(Schema[T])

// Member wraps a field descriptor for SchemaOf. Fields carry two type
// parameters, so a variadic SchemaOf cannot take them directly.
func Member[T, V any](f criterion.Field[T, V]) Binding[T] {
	return func(s Schema[T]) { Bind(s, f) }
}

// SchemaOf builds a schema from field descriptors in one expression:
//
//	schema := query.SchemaOf(query.Member(name), query.Member(age))
func SchemaOf[T any](bindings ...Binding[T]) Schema[T] {
	s := NewSchema[T]()
	for _, bind := range bindings {
		bind(s)
	}
	return s
}

// Memory is an in-process Provider over a fixed slice. It interprets
// the description tree directly, which makes it the reference point
// for the dual-form contract: a predicate's compiled form and a Memory
// provider executing its described form return identical results.
type Memory[T any] struct {
	items  []T
	schema Schema[T]
}

// NewMemory creates a Memory provider over a copy of items. The schema
// must cover every member name the queries will mention; unknown
// members surface as errors at execution time.
func NewMemory[T any](items []T, schema Schema[T]) *Memory[T] {
	return &Memory[T]{
		items:  slices.Clone(items),
		schema: schema,
	}
}

// Select returns the rows matching the query.
func (m *Memory[T]) Select(ctx context.Context, q Query) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched, err := m.filter(q.Where)
	if err != nil {
		return nil, err
	}
	if err := m.sort(matched, q.Order); err != nil {
		return nil, err
	}
	return window(matched, q.Offset, q.Limit), nil
}

// Count returns how many rows Select would return, window included.
func (m *Memory[T]) Count(ctx context.Context, q Query) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	matched, err := m.filter(q.Where)
	if err != nil {
		return 0, err
	}
	return len(window(matched, q.Offset, q.Limit)), nil
}

// resolver resolves member names against one entity via the schema.
func (m *Memory[T]) resolver(item T) ast.Resolver {
	return func(member string) (any, error) {
		get, ok := m.schema[member]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ast.ErrUnknownMember, member)
		}
		return get(item), nil
	}
}

func (m *Memory[T]) filter(where ast.Node) ([]T, error) {
	matched := make([]T, 0, len(m.items))
	for _, item := range m.items {
		ok, err := ast.Eval(where, m.resolver(item))
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// sort orders items by the resolved member values of each term. The
// sort is stable, so rows equal under every term keep source order.
func (m *Memory[T]) sort(items []T, terms []criterion.OrderTerm) error {
	if len(terms) == 0 {
		return nil
	}
	var sortErr error
	slices.SortStableFunc(items, func(a, b T) int {
		for _, term := range terms {
			av, err := m.resolver(a)(term.Member)
			if err != nil {
				if sortErr == nil {
					sortErr = err
				}
				return 0
			}
			bv, err := m.resolver(b)(term.Member)
			if err != nil {
				if sortErr == nil {
					sortErr = err
				}
				return 0
			}
			c, err := ast.CompareValues(av, bv)
			if err != nil {
				if sortErr == nil {
					sortErr = err
				}
				return 0
			}
			if term.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return sortErr
}

// window applies offset and limit, zero meaning unbounded.
func window[T any](items []T, offset, limit int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
