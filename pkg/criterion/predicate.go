package criterion

import (
	"github.com/mwhitford/criterion/pkg/criterion/ast"
)

// opaqueLeafReason is the translation-failure reason recorded for
// predicates built from bare functions.
const opaqueLeafReason = "contains an opaque function leaf"

// Predicate is a built condition over entities of type T. It carries two
// forms of the same condition: a compiled form invoked by Matches, and a
// description form returned by Describe for external translators. Both
// are derived from the same leaves and connectives, so their verdicts
// agree.
//
// A Predicate is immutable once built and safe for unsynchronized use
// from any number of goroutines. The zero value is not a valid
// predicate; obtain one from a Builder, a leaf constructor, or the
// combinators in package where.
type Predicate[T any] struct {
	fn     func(T) bool
	node   ast.Node
	reason string
}

// True returns the identity predicate: it matches every entity and
// describes as a constant-true condition. An empty builder builds it.
func True[T any]() Predicate[T] {
	return Predicate[T]{
		fn:   func(T) bool { return true },
		node: &ast.Bool{Value: true},
	}
}

// Func wraps a bare function as a leaf predicate. The result has no
// description form: asking for one reports a TranslationError, as does
// translating anything built from it. Use Leaf when a description
// exists.
func Func[T any](fn func(T) bool) Predicate[T] {
	if fn == nil {
		panic("criterion: predicate function cannot be nil")
	}
	return Predicate[T]{fn: fn, reason: opaqueLeafReason}
}

// Leaf builds a dual-form leaf from a description node and the function
// that realizes it. The combinators in package where construct their
// leaves this way; custom leaf vocabularies can do the same.
func Leaf[T any](node ast.Node, fn func(T) bool) Predicate[T] {
	if node == nil {
		panic("criterion: leaf node cannot be nil")
	}
	if fn == nil {
		panic("criterion: predicate function cannot be nil")
	}
	return Predicate[T]{fn: fn, node: node}
}

// On composes a member selector with a predicate over the member value,
// producing one entity-level predicate. Every typed convenience
// combinator reduces to this composition. The result is opaque; the
// where package produces describable equivalents for the common
// operators.
func On[T, V any](sel func(T) V, pred func(V) bool) Predicate[T] {
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	if pred == nil {
		panic("criterion: value predicate cannot be nil")
	}
	return Func[T](func(e T) bool { return pred(sel(e)) })
}

// Matches reports whether the entity satisfies the condition.
func (p Predicate[T]) Matches(e T) bool {
	p.mustBeBuilt()
	return p.fn(e)
}

// Not returns a predicate with the inverted verdict. Negation wraps the
// built predicate at evaluation time, so one build serves both
// polarities: p.Not().Matches(e) == !p.Matches(e) for every entity.
func (p Predicate[T]) Not() Predicate[T] {
	p.mustBeBuilt()
	inner := p.fn
	out := Predicate[T]{
		fn:     func(e T) bool { return !inner(e) },
		reason: p.reason,
	}
	if p.node != nil {
		out.node = &ast.Not{Node: p.node}
	}
	return out
}

// Describe returns the description form of the condition for an
// external translator. If any leaf has no description, a
// *TranslationError reports the first reason; direct evaluation is
// unaffected. The returned tree is shared and must not be mutated.
func (p Predicate[T]) Describe() (ast.Node, error) {
	p.mustBeBuilt()
	if p.node == nil {
		return nil, &TranslationError{Reason: p.reason}
	}
	return p.node, nil
}

// String renders the description form, or a placeholder when none
// exists. Intended for logs and debugging.
func (p Predicate[T]) String() string {
	if p.fn == nil {
		return "<empty predicate>"
	}
	if p.node == nil {
		return "<opaque predicate>"
	}
	return p.node.String()
}

func (p Predicate[T]) mustBeBuilt() {
	if p.fn == nil {
		panic("criterion: predicate cannot be empty")
	}
}
