package ast

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownMember is returned by resolvers that cannot supply a value
// for a member name referenced by a condition.
var ErrUnknownMember = errors.New("unknown member")

// Resolver supplies the value of a named member for the entity under
// evaluation. Returning an error aborts the evaluation; missing members
// should wrap ErrUnknownMember.
type Resolver func(member string) (any, error)

// MapResolver resolves member names against a flat document. Missing
// keys yield ErrUnknownMember.
func MapResolver(doc map[string]any) Resolver {
	return func(member string) (any, error) {
		v, ok := doc[member]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMember, member)
		}
		return v, nil
	}
}

// Eval interprets a condition tree against member values supplied by the
// resolver. A nil tree is the identity condition and evaluates to true.
// Unknown members and inoperable operand types surface as errors, never
// as a silent false verdict.
func Eval(n Node, resolve Resolver) (bool, error) {
	if n == nil {
		return true, nil
	}
	if resolve == nil {
		return false, errors.New("resolver cannot be nil")
	}

	switch node := n.(type) {
	case *Bool:
		return node.Value, nil

	case *And:
		for _, c := range node.Nodes {
			ok, err := Eval(c, resolve)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil

	case *Or:
		for _, c := range node.Nodes {
			ok, err := Eval(c, resolve)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil

	case *Not:
		ok, err := Eval(node.Node, resolve)
		if err != nil {
			return false, err
		}
		return !ok, nil

	case *Compare:
		left, err := resolve(node.Member)
		if err != nil {
			return false, err
		}
		return evalCompare(node, left)

	case *Match:
		left, err := resolve(node.Member)
		if err != nil {
			return false, err
		}
		s, ok := left.(string)
		if !ok {
			return false, fmt.Errorf("member %s is %T, want string", node.Member, left)
		}
		if !validMatchOp(node.Op) {
			return false, fmt.Errorf("unknown match operator %q", node.Op)
		}
		return MatchVerdict(s, node.Op, node.Value, node.Fold), nil

	case *In:
		left, err := resolve(node.Member)
		if err != nil {
			return false, err
		}
		found := false
		for _, v := range node.Values {
			eq, err := EqualValues(left, v)
			if err != nil {
				return false, fmt.Errorf("member %s: %w", node.Member, err)
			}
			if eq {
				found = true
				break
			}
		}
		return found != node.Negate, nil

	case *Has:
		left, err := resolve(node.Member)
		if err != nil {
			return false, err
		}
		return evalHas(node, left)

	case *Between:
		left, err := resolve(node.Member)
		if err != nil {
			return false, err
		}
		lo, err := CompareValues(left, node.Lo)
		if err != nil {
			return false, fmt.Errorf("member %s: %w", node.Member, err)
		}
		hi, err := CompareValues(left, node.Hi)
		if err != nil {
			return false, fmt.Errorf("member %s: %w", node.Member, err)
		}
		return lo >= 0 && hi <= 0, nil

	default:
		return false, fmt.Errorf("unknown node type %T", n)
	}
}

func evalCompare(node *Compare, left any) (bool, error) {
	switch node.Op {
	case OpEq, OpNe:
		eq, err := EqualValues(left, node.Value)
		if err != nil {
			return false, fmt.Errorf("member %s: %w", node.Member, err)
		}
		return eq == (node.Op == OpEq), nil
	case OpLt, OpLe, OpGt, OpGe:
		c, err := CompareValues(left, node.Value)
		if err != nil {
			return false, fmt.Errorf("member %s: %w", node.Member, err)
		}
		return CompareVerdict(c, node.Op), nil
	default:
		return false, fmt.Errorf("unknown compare operator %q", node.Op)
	}
}

func evalHas(node *Has, left any) (bool, error) {
	elems, err := collectionValues(left)
	if err != nil {
		return false, fmt.Errorf("member %s: %w", node.Member, err)
	}
	for _, e := range elems {
		eq, err := EqualValues(e, node.Value)
		if err != nil {
			return false, fmt.Errorf("member %s: %w", node.Member, err)
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

// collectionValues widens the common slice shapes a resolver can return.
// Named slice types require a typed combinator instead.
func collectionValues(v any) ([]any, error) {
	switch c := v.(type) {
	case []any:
		return c, nil
	case []string:
		out := make([]any, len(c))
		for i, e := range c {
			out[i] = e
		}
		return out, nil
	case []int:
		out := make([]any, len(c))
		for i, e := range c {
			out[i] = e
		}
		return out, nil
	case []int64:
		out := make([]any, len(c))
		for i, e := range c {
			out[i] = e
		}
		return out, nil
	case []float64:
		out := make([]any, len(c))
		for i, e := range c {
			out[i] = e
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%T is not a supported collection", v)
	}
}

// CompareVerdict maps a three-way comparison result to the verdict of an
// ordering operator. Both the typed combinators and the interpreter call
// this, so ordering semantics exist exactly once.
func CompareVerdict(c int, op CompareOp) bool {
	switch op {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	case OpGt:
		return c > 0
	case OpGe:
		return c >= 0
	default:
		return false
	}
}

// MatchVerdict applies a string-matching operator. Fold lowercases both
// sides first. Both the typed combinators and the interpreter call this.
func MatchVerdict(s string, op MatchOp, value string, fold bool) bool {
	if fold {
		s = strings.ToLower(s)
		value = strings.ToLower(value)
	}
	switch op {
	case MatchContains:
		return strings.Contains(s, value)
	case MatchHasPrefix:
		return strings.HasPrefix(s, value)
	case MatchHasSuffix:
		return strings.HasSuffix(s, value)
	case MatchEquals:
		return s == value
	default:
		return false
	}
}

func validMatchOp(op MatchOp) bool {
	switch op {
	case MatchContains, MatchHasPrefix, MatchHasSuffix, MatchEquals:
		return true
	}
	return false
}

// numKind classifies a dynamic numeric value.
type numKind int

const (
	numInt numKind = iota
	numUint
	numFloat
)

// number is a dynamic numeric value widened to its machine family.
type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

// asNumber widens plain machine numerics. Named numeric types do not
// match here; they belong to the typed combinator path.
func asNumber(v any) (number, bool) {
	switch n := v.(type) {
	case int:
		return number{kind: numInt, i: int64(n)}, true
	case int8:
		return number{kind: numInt, i: int64(n)}, true
	case int16:
		return number{kind: numInt, i: int64(n)}, true
	case int32:
		return number{kind: numInt, i: int64(n)}, true
	case int64:
		return number{kind: numInt, i: n}, true
	case uint:
		return number{kind: numUint, u: uint64(n)}, true
	case uint8:
		return number{kind: numUint, u: uint64(n)}, true
	case uint16:
		return number{kind: numUint, u: uint64(n)}, true
	case uint32:
		return number{kind: numUint, u: uint64(n)}, true
	case uint64:
		return number{kind: numUint, u: n}, true
	case float32:
		return number{kind: numFloat, f: float64(n)}, true
	case float64:
		return number{kind: numFloat, f: n}, true
	default:
		return number{}, false
	}
}

func (n number) float() float64 {
	switch n.kind {
	case numInt:
		return float64(n.i)
	case numUint:
		return float64(n.u)
	default:
		return n.f
	}
}

// compareNumbers orders two dynamic numerics. Integer pairs compare
// exactly; a float on either side promotes both to float64.
func compareNumbers(a, b number) int {
	if a.kind == numFloat || b.kind == numFloat {
		return cmp.Compare(a.float(), b.float())
	}
	switch {
	case a.kind == numInt && b.kind == numInt:
		return cmp.Compare(a.i, b.i)
	case a.kind == numUint && b.kind == numUint:
		return cmp.Compare(a.u, b.u)
	case a.kind == numInt:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	default:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	}
}

// CompareValues orders two dynamic values. Supported pairings are
// numeric (with cross-family promotion), string, and time.Time. Anything
// else is an error: ordering verdicts are never guessed.
func CompareValues(a, b any) (int, error) {
	if an, ok := asNumber(a); ok {
		if bn, ok := asNumber(b); ok {
			return compareNumbers(an, bn), nil
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return cmp.Compare(as, bs), nil
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt), nil
		}
	}
	return 0, fmt.Errorf("cannot order %T against %T", a, b)
}

// EqualValues tests two dynamic values for equality. Supported pairings
// are nil, numeric (with promotion), string, bool, and time.Time.
func EqualValues(a, b any) (bool, error) {
	if a == nil || b == nil {
		return a == nil && b == nil, nil
	}
	if an, ok := asNumber(a); ok {
		if bn, ok := asNumber(b); ok {
			return compareNumbers(an, bn) == 0, nil
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as == bs, nil
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return ab == bb, nil
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Equal(bt), nil
		}
	}
	return false, fmt.Errorf("cannot compare %T against %T for equality", a, b)
}
