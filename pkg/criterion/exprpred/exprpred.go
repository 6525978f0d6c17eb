// Package exprpred compiles boolean expression strings into opaque
// predicates via expr-lang.
//
// The expression is compiled against the entity type, so member
// references are checked at compile time:
//
//	adults, err := exprpred.Compile[Person](`Age > 18 && IsActive`)
//	if err != nil {
//	    // syntax error or non-boolean expression
//	}
//	criterion.All(people, adults)
//
// The resulting leaves are compiled-only: an expression string is not a
// pure description tree, so translating a predicate containing one
// reports a TranslationError. Runtime evaluation failures inside the
// compiled program panic, the same way any caller-supplied predicate
// failure propagates.
//
// Compiled programs are cached process-wide per (entity type,
// expression) pair, so rebuilding the same predicate is cheap.
package exprpred

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mwhitford/criterion/pkg/criterion"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*vm.Program)
)

// Compile builds an opaque predicate from a boolean expression over T's
// members. An empty expression compiles to the identity predicate.
// Returns an error when the expression does not parse, references
// unknown members, or does not produce a boolean.
func Compile[T any](src string) (criterion.Predicate[T], error) {
	if src == "" {
		return criterion.True[T](), nil
	}

	program, err := compile[T](src)
	if err != nil {
		return criterion.Predicate[T]{}, fmt.Errorf("exprpred: compile %q: %w", src, err)
	}

	return criterion.Func(func(e T) bool {
		out, err := expr.Run(program, e)
		if err != nil {
			panic(fmt.Sprintf("exprpred: evaluate %q: %v", src, err))
		}
		return out.(bool)
	}), nil
}

// MustCompile is Compile for expressions known good at program start;
// it panics on a compile error.
func MustCompile[T any](src string) criterion.Predicate[T] {
	p, err := Compile[T](src)
	if err != nil {
		panic(err)
	}
	return p
}

// compile returns the cached program for the (type, expression) pair,
// compiling and caching on first use.
func compile[T any](src string) (*vm.Program, error) {
	var zero T
	key := fmt.Sprintf("%T\x00%s", zero, src)

	cacheMu.RLock()
	program, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(src,
		expr.Env(zero),
		expr.AsBool(),
	)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	cache[key] = program
	cacheMu.Unlock()

	return program, nil
}
