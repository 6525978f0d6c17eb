// Package ast defines the description form of a built predicate: a small,
// pure tree of condition nodes over named entity members and constant
// values. The tree carries no behavior of its own, which makes it safe to
// hand to external translators (query builders, remote filters) that walk
// it with a type switch.
//
// Node values are treated as read-only once built. Translators must not
// mutate them; the same tree may back many concurrent evaluations.
//
// The eval side of the package (see Eval) interprets a tree against member
// values supplied by a Resolver. The verdict helpers (CompareVerdict,
// MatchVerdict) hold the operator semantics shared by interpretation and
// by the typed combinators, so the two evaluation paths cannot drift.
package ast

import (
	"fmt"
	"strings"
)

// CompareOp is an ordering or equality operator on a member value.
type CompareOp string

// Comparison operators.
const (
	OpEq CompareOp = "eq"
	OpNe CompareOp = "ne"
	OpLt CompareOp = "lt"
	OpLe CompareOp = "le"
	OpGt CompareOp = "gt"
	OpGe CompareOp = "ge"
)

// MatchOp is a string-matching operator on a member value.
type MatchOp string

// String-matching operators.
const (
	MatchContains  MatchOp = "contains"
	MatchHasPrefix MatchOp = "has_prefix"
	MatchHasSuffix MatchOp = "has_suffix"
	MatchEquals    MatchOp = "equals"
)

// Node is a condition over an entity. Implementations are the concrete
// node types in this package; the interface is sealed.
type Node interface {
	fmt.Stringer

	// node restricts implementations to this package.
	node()
}

// Compare tests a member value against a constant with a CompareOp.
type Compare struct {
	Member string
	Op     CompareOp
	Value  any
}

// Match tests a string member against a constant with a MatchOp.
// Fold requests simple case folding on both sides.
type Match struct {
	Member string
	Op     MatchOp
	Value  string
	Fold   bool
}

// In tests whether a member value appears in a constant list.
// Negate inverts the verdict.
type In struct {
	Member string
	Values []any
	Negate bool
}

// Has tests whether a collection member contains a constant value.
type Has struct {
	Member string
	Value  any
}

// Between tests whether a member value lies in an inclusive range.
type Between struct {
	Member string
	Lo     any
	Hi     any
}

// And is the conjunction of its children, in order. Children are
// evaluated left to right with short-circuiting.
type And struct {
	Nodes []Node
}

// Or is the disjunction of its children, in order. Children are
// evaluated left to right with short-circuiting.
type Or struct {
	Nodes []Node
}

// Not inverts the verdict of its child.
type Not struct {
	Node Node
}

// Bool is a constant verdict. The identity condition is Bool{Value: true}.
type Bool struct {
	Value bool
}

func (*Compare) node() {}
func (*Match) node()   {}
func (*In) node()      {}
func (*Has) node()     {}
func (*Between) node() {}
func (*And) node()     {}
func (*Or) node()      {}
func (*Not) node()     {}
func (*Bool) node()    {}

// compareSymbols maps operators to their infix rendering.
var compareSymbols = map[CompareOp]string{
	OpEq: "==",
	OpNe: "!=",
	OpLt: "<",
	OpLe: "<=",
	OpGt: ">",
	OpGe: ">=",
}

// String renders the comparison in infix form, e.g. `Age > 18`.
func (n *Compare) String() string {
	sym, ok := compareSymbols[n.Op]
	if !ok {
		sym = string(n.Op)
	}
	return fmt.Sprintf("%s %s %s", n.Member, sym, formatValue(n.Value))
}

// String renders the match in infix form, e.g. `Name contains "li"`.
// A trailing tilde marks case folding: `Name contains~ "li"`.
func (n *Match) String() string {
	op := string(n.Op)
	if n.Fold {
		op += "~"
	}
	return fmt.Sprintf("%s %s %q", n.Member, op, n.Value)
}

// String renders the membership test, e.g. `Status in ["new", "open"]`.
func (n *In) String() string {
	vals := make([]string, len(n.Values))
	for i, v := range n.Values {
		vals[i] = formatValue(v)
	}
	op := "in"
	if n.Negate {
		op = "not in"
	}
	return fmt.Sprintf("%s %s [%s]", n.Member, op, strings.Join(vals, ", "))
}

// String renders the collection test, e.g. `Tags has "go"`.
func (n *Has) String() string {
	return fmt.Sprintf("%s has %s", n.Member, formatValue(n.Value))
}

// String renders the range test, e.g. `Age between 18 and 30`.
func (n *Between) String() string {
	return fmt.Sprintf("%s between %s and %s", n.Member, formatValue(n.Lo), formatValue(n.Hi))
}

// String renders the conjunction with parenthesized children,
// e.g. `(a) AND (b)`.
func (n *And) String() string {
	return joinChildren(n.Nodes, " AND ")
}

// String renders the disjunction with parenthesized children,
// e.g. `(a) OR (b)`.
func (n *Or) String() string {
	return joinChildren(n.Nodes, " OR ")
}

// String renders the negation, e.g. `NOT (Age > 18)`.
func (n *Not) String() string {
	if n.Node == nil {
		return "NOT ()"
	}
	return fmt.Sprintf("NOT (%s)", n.Node.String())
}

// String renders the constant verdict as TRUE or FALSE.
func (n *Bool) String() string {
	if n.Value {
		return "TRUE"
	}
	return "FALSE"
}

func joinChildren(nodes []Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, c := range nodes {
		parts[i] = "(" + c.String() + ")"
	}
	return strings.Join(parts, sep)
}

// formatValue renders a constant for display. Strings are quoted so they
// read unambiguously next to member names.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// Members returns the distinct member names referenced by the tree, in
// first-seen order. Useful for validating that a schema or a remote
// collaborator can resolve everything a condition needs.
func Members(n Node) []string {
	var names []string
	seen := make(map[string]struct{})
	record := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	walkMembers(n, record)
	return names
}

func walkMembers(n Node, record func(string)) {
	switch node := n.(type) {
	case *Compare:
		record(node.Member)
	case *Match:
		record(node.Member)
	case *In:
		record(node.Member)
	case *Has:
		record(node.Member)
	case *Between:
		record(node.Member)
	case *And:
		for _, c := range node.Nodes {
			walkMembers(c, record)
		}
	case *Or:
		for _, c := range node.Nodes {
			walkMembers(c, record)
		}
	case *Not:
		walkMembers(node.Node, record)
	}
}
