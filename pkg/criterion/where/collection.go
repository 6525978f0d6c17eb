package where

import (
	"slices"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/ast"
)

// In matches entities whose field equals one of the given values. With
// no values it matches nothing.
func In[T any, V comparable](f criterion.Field[T, V], values ...V) criterion.Predicate[T] {
	get := accessor(f)
	vals := slices.Clone(values)
	return leaf(f.Name, &ast.In{Member: f.Name, Values: anySlice(vals)},
		func(e T) bool { return slices.Contains(vals, get(e)) })
}

// NotIn matches entities whose field equals none of the given values.
// With no values it matches everything.
func NotIn[T any, V comparable](f criterion.Field[T, V], values ...V) criterion.Predicate[T] {
	get := accessor(f)
	vals := slices.Clone(values)
	return leaf(f.Name, &ast.In{Member: f.Name, Values: anySlice(vals), Negate: true},
		func(e T) bool { return !slices.Contains(vals, get(e)) })
}

// Has matches entities whose collection field contains v.
func Has[T any, E comparable](f criterion.Field[T, []E], v E) criterion.Predicate[T] {
	get := accessor(f)
	return leaf(f.Name, &ast.Has{Member: f.Name, Value: v},
		func(e T) bool { return slices.Contains(get(e), v) })
}

func anySlice[V any](vals []V) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
