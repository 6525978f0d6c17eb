package store

import (
	"context"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/query"
)

// FindBy evaluates a whole specification against store contents: load,
// filter by the built predicate, order, and apply the page or top window
// the specification carries. Include paths are ignored; a flat document
// store has no related data to load.
//
// Validation failures in the specification's numbers surface as
// *criterion.ArgumentError, matching the in-memory evaluator.
func FindBy[T any](ctx context.Context, s Store[T], spec criterion.Specification[T]) ([]T, error) {
	items, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	var order []criterion.OrderBy[T]
	if o := spec.Order(); !o.IsZero() {
		order = append(order, o)
	}

	pred := spec.Predicate()
	if page, pageSize, ok := spec.Page(); ok {
		return criterion.Page(items, pred, page, pageSize, order...)
	}
	if count, ok := spec.Top(); ok {
		return criterion.Top(items, pred, count, order...)
	}
	return criterion.All(items, pred, order...), nil
}

// storeProvider adapts a Store into a query.Provider by snapshotting
// its contents and interpreting the query over the snapshot.
type storeProvider[T any] struct {
	store  Store[T]
	schema query.Schema[T]
}

// NewProvider adapts a store into a query.Provider. Each execution
// snapshots the store's current contents and interprets the composed
// query over the snapshot, so results are fully materialized and never
// hold a cursor open. The schema must cover every member name the
// queries will mention.
func NewProvider[T any](s Store[T], schema query.Schema[T]) query.Provider[T] {
	if s == nil {
		panic("store: store cannot be nil")
	}
	return &storeProvider[T]{store: s, schema: schema}
}

// Select implements query.Provider.
func (p *storeProvider[T]) Select(ctx context.Context, q query.Query) ([]T, error) {
	items, err := p.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.NewMemory(items, p.schema).Select(ctx, q)
}

// Count implements query.Provider.
func (p *storeProvider[T]) Count(ctx context.Context, q query.Query) (int, error) {
	items, err := p.store.All(ctx)
	if err != nil {
		return 0, err
	}
	return query.NewMemory(items, p.schema).Count(ctx, q)
}
