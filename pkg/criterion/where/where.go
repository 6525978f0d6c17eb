// Package where provides typed convenience combinators: one-call
// constructors for the common leaf conditions over a named field.
//
// Every combinator is a mechanical wrapper around the core leaf
// constructors — it pairs a description node with the function that
// realizes it, routing both through the same operator semantics the
// interpreter uses (ast.CompareVerdict, ast.MatchVerdict). The results
// are ordinary dual-form predicates, ready for Builder.Add:
//
//	adults := criterion.NewBuilder[Person]().
//		Add(where.Gt(age, 18)).
//		And().
//		Add(where.Eq(active, true)).
//		Build()
//
// Combinators over a Field without a name still evaluate in memory but
// drop the description form, so translating them reports a
// TranslationError. The validators (ValidJSON, ValidBase64) are opaque
// by nature and behave the same way.
package where

import (
	"cmp"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/ast"
)

// accessor validates and returns the field accessor.
func accessor[T, V any](f criterion.Field[T, V]) func(T) V {
	if f.Get == nil {
		panic("where: field accessor cannot be nil")
	}
	return f.Get
}

// leaf builds a dual-form leaf for a named field and an opaque one for
// an unnamed field, which has nothing to describe.
func leaf[T any](member string, node ast.Node, fn func(T) bool) criterion.Predicate[T] {
	if member == "" {
		return criterion.Func(fn)
	}
	return criterion.Leaf(node, fn)
}

// ordered builds a comparison leaf whose compiled form reuses the
// shared ordering verdict.
func ordered[T any, V cmp.Ordered](f criterion.Field[T, V], op ast.CompareOp, v V) criterion.Predicate[T] {
	get := accessor(f)
	return leaf(f.Name, &ast.Compare{Member: f.Name, Op: op, Value: v},
		func(e T) bool { return ast.CompareVerdict(cmp.Compare(get(e), v), op) })
}

// Eq matches entities whose field equals v.
func Eq[T any, V comparable](f criterion.Field[T, V], v V) criterion.Predicate[T] {
	get := accessor(f)
	return leaf(f.Name, &ast.Compare{Member: f.Name, Op: ast.OpEq, Value: v},
		func(e T) bool { return get(e) == v })
}

// Ne matches entities whose field differs from v.
func Ne[T any, V comparable](f criterion.Field[T, V], v V) criterion.Predicate[T] {
	get := accessor(f)
	return leaf(f.Name, &ast.Compare{Member: f.Name, Op: ast.OpNe, Value: v},
		func(e T) bool { return get(e) != v })
}

// Lt matches entities whose field is less than v.
func Lt[T any, V cmp.Ordered](f criterion.Field[T, V], v V) criterion.Predicate[T] {
	return ordered(f, ast.OpLt, v)
}

// Le matches entities whose field is at most v.
func Le[T any, V cmp.Ordered](f criterion.Field[T, V], v V) criterion.Predicate[T] {
	return ordered(f, ast.OpLe, v)
}

// Gt matches entities whose field is greater than v.
func Gt[T any, V cmp.Ordered](f criterion.Field[T, V], v V) criterion.Predicate[T] {
	return ordered(f, ast.OpGt, v)
}

// Ge matches entities whose field is at least v.
func Ge[T any, V cmp.Ordered](f criterion.Field[T, V], v V) criterion.Predicate[T] {
	return ordered(f, ast.OpGe, v)
}

// Between matches entities whose field lies in the inclusive range
// [lo, hi].
func Between[T any, V cmp.Ordered](f criterion.Field[T, V], lo, hi V) criterion.Predicate[T] {
	get := accessor(f)
	return leaf(f.Name, &ast.Between{Member: f.Name, Lo: lo, Hi: hi},
		func(e T) bool {
			v := get(e)
			return v >= lo && v <= hi
		})
}

// IsTrue matches entities whose boolean field is true.
func IsTrue[T any](f criterion.Field[T, bool]) criterion.Predicate[T] {
	return Eq(f, true)
}

// IsFalse matches entities whose boolean field is false.
func IsFalse[T any](f criterion.Field[T, bool]) criterion.Predicate[T] {
	return Eq(f, false)
}
