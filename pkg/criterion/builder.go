package criterion

import (
	"github.com/mwhitford/criterion/pkg/criterion/ast"
)

// Builder assembles a condition from leaf predicates and sub-groups,
// joined left to right by explicit AND/OR connectives. Build folds the
// accumulated sequence into an immutable Predicate without consuming
// the builder, so a builder can keep growing after a build.
//
// There is no operator precedence: connectives apply strictly in the
// order written, so a.Or(b).And(c) reads as (a OR b) AND c. Use
// AddGroup for explicit parenthesization.
//
// A Builder is not safe for concurrent use. The predicates it builds
// are.
//
// Example:
//
//	adults := criterion.NewBuilder[Person]().
//		Add(where.Gt(age, 18)).
//		And().
//		Add(where.Eq(active, true)).
//		Build()
type Builder[T any] struct {
	nodes []conditionNode[T]
	next  connective
}

// NewBuilder creates an empty condition builder. Building it without
// adding anything yields the identity predicate, which matches every
// entity.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Add appends a leaf condition, joined to the previous node by the
// pending connective (AND unless Or was called since the last append).
// Returns the builder for chaining.
//
// Panics if p is the zero Predicate.
func (b *Builder[T]) Add(p Predicate[T]) *Builder[T] {
	if p.fn == nil {
		panic("criterion: predicate cannot be empty")
	}
	b.nodes = append(b.nodes, conditionNode[T]{kind: kindLeaf, pred: p, conn: b.next})
	b.next = connAnd
	return b
}

// AddGroup builds an independent child builder via fn, folds it into a
// single parenthesized group node, and appends that node. Groups nest
// without bound. The child builder's pending-connective state is its
// own and never leaks into this builder. An empty group folds to the
// identity predicate.
//
// Panics if fn is nil.
//
// Example:
//
//	// active AND (admin OR owner)
//	b.Add(isActive).AddGroup(func(g *criterion.Builder[User]) {
//		g.Add(isAdmin).Or().Add(isOwner)
//	})
func (b *Builder[T]) AddGroup(fn func(*Builder[T])) *Builder[T] {
	if fn == nil {
		panic("criterion: group function cannot be nil")
	}
	child := NewBuilder[T]()
	fn(child)
	b.nodes = append(b.nodes, conditionNode[T]{kind: kindGroup, pred: child.Build(), conn: b.next})
	b.next = connAnd
	return b
}

// And records AND as the connective for the next appended node. This is
// the default, so And is mostly useful for readable chains. Calling it
// with no subsequent append is inert; of consecutive And/Or calls, the
// last one wins.
func (b *Builder[T]) And() *Builder[T] {
	b.next = connAnd
	return b
}

// Or records OR as the connective for the next appended node. Calling
// it with no subsequent append is inert; of consecutive And/Or calls,
// the last one wins.
func (b *Builder[T]) Or() *Builder[T] {
	b.next = connOr
	return b
}

// Len returns the number of nodes appended so far, counting each group
// as one.
func (b *Builder[T]) Len() int {
	return len(b.nodes)
}

// Build folds the accumulated sequence into an immutable Predicate.
// Build is a pure read: it never mutates the builder, may be called
// repeatedly, and reflects whatever has been appended so far. With no
// nodes it returns the identity predicate.
//
// The fold is strictly left-associative. Runs of the same connective
// collapse into one n-ary description node; sub-groups keep their own
// structure.
func (b *Builder[T]) Build() Predicate[T] {
	if len(b.nodes) == 0 {
		return True[T]()
	}

	first := b.nodes[0].pred
	fn := first.fn
	node := first.node
	reason := first.reason

	// folded tracks whether node is an n-ary connective created by this
	// fold, so same-connective runs extend it in place without
	// disturbing structure the caller wrote.
	var foldedConn connective
	folded := false

	for _, n := range b.nodes[1:] {
		left, right := fn, n.pred.fn
		if n.conn == connAnd {
			fn = func(e T) bool { return left(e) && right(e) }
		} else {
			fn = func(e T) bool { return left(e) || right(e) }
		}

		if reason == "" && n.pred.reason != "" {
			reason = n.pred.reason
		}
		if reason != "" {
			node = nil
			continue
		}

		child := n.pred.node
		if folded && foldedConn == n.conn {
			switch agg := node.(type) {
			case *ast.And:
				agg.Nodes = append(agg.Nodes, child)
			case *ast.Or:
				agg.Nodes = append(agg.Nodes, child)
			}
			continue
		}
		if n.conn == connAnd {
			node = &ast.And{Nodes: []ast.Node{node, child}}
		} else {
			node = &ast.Or{Nodes: []ast.Node{node, child}}
		}
		foldedConn = n.conn
		folded = true
	}

	return Predicate[T]{fn: fn, node: node, reason: reason}
}
