package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory document store. Data is lost when the
// process exits; use it for tests and ephemeral working sets.
type MemoryStore[T any] struct {
	mu     sync.RWMutex
	docs   map[string]T
	order  []string
	closed bool
	opts   options[T]
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[T any](opts ...Option[T]) *MemoryStore[T] {
	o := defaultStoreOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return &MemoryStore[T]{
		docs: make(map[string]T),
		opts: o,
	}
}

// Insert implements Store. The batch is atomic: a duplicate ID anywhere
// in it leaves the store unchanged.
func (m *MemoryStore[T]) Insert(ctx context.Context, items ...T) (ids []string, err error) {
	ctx, done := m.opts.instrument(ctx, "insert", "")
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	ids = make([]string, len(items))
	for i, item := range items {
		id := ""
		if m.opts.id != nil {
			id = m.opts.id(item)
		}
		if id == "" {
			id = uuid.NewString()
		}
		ids[i] = id
	}

	// Validate the whole batch before applying any of it.
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := m.docs[id]; dup {
			return nil, ErrDuplicateID
		}
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateID
		}
		seen[id] = struct{}{}
	}

	for i, item := range items {
		m.docs[ids[i]] = item
		m.order = append(m.order, ids[i])
	}
	return ids, nil
}

// Update implements Store.
func (m *MemoryStore[T]) Update(ctx context.Context, id string, item T) (err error) {
	ctx, done := m.opts.instrument(ctx, "update", id)
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	m.docs[id] = item
	return nil
}

// Delete implements Store.
func (m *MemoryStore[T]) Delete(ctx context.Context, id string) (err error) {
	ctx, done := m.opts.instrument(ctx, "delete", id)
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get implements Store.
func (m *MemoryStore[T]) Get(ctx context.Context, id string) (item T, err error) {
	ctx, done := m.opts.instrument(ctx, "get", id)
	defer func() { done(err) }()

	var zero T
	if err = ctx.Err(); err != nil {
		return zero, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return zero, ErrStoreClosed
	}
	item, ok := m.docs[id]
	if !ok {
		return zero, ErrNotFound
	}
	return item, nil
}

// All implements Store. Documents come back in insertion order.
func (m *MemoryStore[T]) All(ctx context.Context) (items []T, err error) {
	ctx, done := m.opts.instrument(ctx, "all", "")
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}
	items = make([]T, 0, len(m.order))
	for _, id := range m.order {
		items = append(items, m.docs[id])
	}
	return items, nil
}

// Count implements Store.
func (m *MemoryStore[T]) Count(ctx context.Context) (n int, err error) {
	ctx, done := m.opts.instrument(ctx, "count", "")
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrStoreClosed
	}
	return len(m.docs), nil
}

// Close implements Store. Closing twice is harmless.
func (m *MemoryStore[T]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.docs = nil
	m.order = nil
	return nil
}
