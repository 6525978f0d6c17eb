package where

import (
	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/ast"
)

// match builds a string-matching leaf whose compiled form reuses the
// shared matching verdict.
func match[T any](f criterion.Field[T, string], op ast.MatchOp, value string, fold bool) criterion.Predicate[T] {
	get := accessor(f)
	return leaf(f.Name, &ast.Match{Member: f.Name, Op: op, Value: value, Fold: fold},
		func(e T) bool { return ast.MatchVerdict(get(e), op, value, fold) })
}

// Contains matches entities whose string field contains s.
func Contains[T any](f criterion.Field[T, string], s string) criterion.Predicate[T] {
	return match(f, ast.MatchContains, s, false)
}

// ContainsFold matches like Contains but case-insensitively.
func ContainsFold[T any](f criterion.Field[T, string], s string) criterion.Predicate[T] {
	return match(f, ast.MatchContains, s, true)
}

// HasPrefix matches entities whose string field starts with s.
func HasPrefix[T any](f criterion.Field[T, string], s string) criterion.Predicate[T] {
	return match(f, ast.MatchHasPrefix, s, false)
}

// HasSuffix matches entities whose string field ends with s.
func HasSuffix[T any](f criterion.Field[T, string], s string) criterion.Predicate[T] {
	return match(f, ast.MatchHasSuffix, s, false)
}

// EqFold matches entities whose string field equals s under case
// folding.
func EqFold[T any](f criterion.Field[T, string], s string) criterion.Predicate[T] {
	return match(f, ast.MatchEquals, s, true)
}

// Empty matches entities whose string field is the empty string.
func Empty[T any](f criterion.Field[T, string]) criterion.Predicate[T] {
	return Eq(f, "")
}

// NotEmpty matches entities whose string field is non-empty.
func NotEmpty[T any](f criterion.Field[T, string]) criterion.Predicate[T] {
	return Ne(f, "")
}
