/*
Package criterion builds typed predicates from smaller conditions and
evaluates them over in-memory collections or through external query
providers.

# Overview

criterion is a Go library for assembling a boolean condition over a
typed entity piece by piece: add leaf conditions, join them with
explicit AND/OR connectives, nest parenthesized sub-groups, then build
an immutable predicate. The built predicate carries two forms of the
same condition:

  - a compiled form, invoked directly with Matches
  - a description form, a small AST over named members and constants,
    handed to external translators via Describe

Both forms are derived from the same leaves, so their verdicts always
agree. Evaluation operations (quantifiers, selection, paging, grouping,
aggregation) work over materialized slices; the query subpackage mirrors
the surface for provider-backed sources.

# Basic Usage

Declare fields once per entity, build, evaluate:

	type Person struct {
	    Name     string
	    Age      int
	    IsActive bool
	}

	var (
	    age    = criterion.NewField("Age", func(p Person) int { return p.Age })
	    active = criterion.NewField("IsActive", func(p Person) bool { return p.IsActive })
	)

	adults := criterion.NewBuilder[Person]().
	    Add(where.Gt(age, 18)).
	    And().
	    Add(where.Eq(active, true)).
	    Build()

	matched := criterion.All(people, adults)
	total := criterion.SumBy(people, adults, func(p Person) int { return p.Age })

# Connectives and Grouping

Connectives apply strictly left to right with no operator precedence:
a.Or(b).And(c) means (a OR b) AND c. Parenthesize with AddGroup, which
folds an independent child builder into one group node:

	// active AND (admin OR owner)
	b := criterion.NewBuilder[User]().
	    Add(isActive).
	    AddGroup(func(g *criterion.Builder[User]) {
	        g.Add(isAdmin).Or().Add(isOwner)
	    })

And()/Or() record the connective for the next added node; the default
is AND, trailing calls are inert, and of consecutive calls the last
wins. Build is a pure read: call it repeatedly as the builder grows.

# Negation

Negation wraps a built predicate at evaluation time, so one build
serves both polarities:

	minors := adults.Not()
	criterion.All(people, minors) // == criterion.AllFailed(people, adults)

# Ordering

OrderBy values are immutable: a primary term plus chained tie-breakers,
applied stably so equal elements keep source order:

	byAge := criterion.Descending(age).Then(criterion.Ascending(name))
	oldest := criterion.All(people, adults, byAge)

# Translation

Describe returns the condition as a pure AST for external translators;
predicates containing opaque function leaves report a TranslationError
at translation time and evaluate normally everywhere else:

	node, err := adults.Describe()
	if err != nil {
	    // contains a leaf with no description form
	}
	fmt.Println(node) // (Age > 18) AND (IsActive == true)

The query subpackage composes predicates, orderings, and paging into
Query descriptions and executes them through a Provider.

# Errors

Evaluation operations return *ArgumentError for out-of-range numeric
arguments and *EmptyResultError for aggregations over an empty filtered
set; both unwrap to package sentinels for errors.Is. Misusing a builder
(zero predicates, nil functions) panics immediately. Failures raised by
caller-supplied selectors and predicates propagate unmodified.

# Thread Safety

Builders are not safe for concurrent use. Built Predicate, OrderBy, and
Specification values are immutable and safe to share without
synchronization. Evaluation operations are pure functions.

# Subpackages

  - ast: the description-form node types and their interpreter
  - where: typed convenience combinators producing dual-form leaves
  - query: query descriptions, providers, and the remote executor
  - store: document stores consuming specifications
  - exprpred: expression-string leaves compiled via expr-lang
  - observability: structured logging, metrics, and tracing helpers
  - config: file-backed configuration for stores and examples
*/
package criterion
