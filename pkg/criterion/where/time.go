package where

import (
	"time"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/ast"
)

// timeCompare builds a time-comparison leaf. time.Time has no natural
// Go ordering, so the compiled form goes through Time.Compare and the
// shared ordering verdict.
func timeCompare[T any](f criterion.Field[T, time.Time], op ast.CompareOp, t time.Time) criterion.Predicate[T] {
	get := accessor(f)
	return leaf(f.Name, &ast.Compare{Member: f.Name, Op: op, Value: t},
		func(e T) bool { return ast.CompareVerdict(get(e).Compare(t), op) })
}

// Before matches entities whose time field is strictly before t.
func Before[T any](f criterion.Field[T, time.Time], t time.Time) criterion.Predicate[T] {
	return timeCompare(f, ast.OpLt, t)
}

// After matches entities whose time field is strictly after t.
func After[T any](f criterion.Field[T, time.Time], t time.Time) criterion.Predicate[T] {
	return timeCompare(f, ast.OpGt, t)
}

// NotBefore matches entities whose time field is at or after t.
func NotBefore[T any](f criterion.Field[T, time.Time], t time.Time) criterion.Predicate[T] {
	return timeCompare(f, ast.OpGe, t)
}

// NotAfter matches entities whose time field is at or before t.
func NotAfter[T any](f criterion.Field[T, time.Time], t time.Time) criterion.Predicate[T] {
	return timeCompare(f, ast.OpLe, t)
}

// BetweenTimes matches entities whose time field lies in the inclusive
// range [lo, hi].
func BetweenTimes[T any](f criterion.Field[T, time.Time], lo, hi time.Time) criterion.Predicate[T] {
	get := accessor(f)
	return leaf(f.Name, &ast.Between{Member: f.Name, Lo: lo, Hi: hi},
		func(e T) bool {
			v := get(e)
			return v.Compare(lo) >= 0 && v.Compare(hi) <= 0
		})
}
