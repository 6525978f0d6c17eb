package criterion_test

import (
	"testing"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/where"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder_Empty verifies an empty builder builds the identity
// predicate: true for every entity.
func TestBuilder_Empty(t *testing.T) {
	p := criterion.NewBuilder[person]().Build()

	for _, e := range people() {
		assert.True(t, p.Matches(e))
	}

	node, err := p.Describe()
	require.NoError(t, err)
	assert.Equal(t, "TRUE", node.String())
}

// TestBuilder_SingleLeaf verifies one added leaf builds to itself.
func TestBuilder_SingleLeaf(t *testing.T) {
	p := criterion.NewBuilder[person]().
		Add(where.Gt(ageField, 18)).
		Build()

	assert.Equal(t, []string{"Alice", "", "Charlie"}, names(criterion.All(people(), p)))
}

// TestBuilder_DefaultConnectiveIsAnd verifies two leaves added without
// an explicit connective join with AND.
func TestBuilder_DefaultConnectiveIsAnd(t *testing.T) {
	p := criterion.NewBuilder[person]().
		Add(where.Gt(ageField, 18)).
		Add(where.IsTrue(activeField)).
		Build()

	assert.Equal(t, []string{"Alice", "", "Charlie"}, names(criterion.All(people(), p)))
}

// TestBuilder_NoOperatorPrecedence pins the left-to-right fold:
// a OR b AND c means (a OR b) AND c, never a OR (b AND c).
func TestBuilder_NoOperatorPrecedence(t *testing.T) {
	// Name == "Bob" OR Age > 18 AND IsActive
	p := criterion.NewBuilder[person]().
		Add(where.Eq(nameField, "Bob")).
		Or().
		Add(where.Gt(ageField, 18)).
		And().
		Add(where.IsTrue(activeField)).
		Build()

	// Under (a OR b) AND c, Bob fails: he matches a but not c.
	// Under a OR (b AND c), Bob would pass.
	assert.Equal(t, []string{"Alice", "", "Charlie"}, names(criterion.All(people(), p)))
}

// TestBuilder_Or verifies explicit disjunction.
func TestBuilder_Or(t *testing.T) {
	p := criterion.NewBuilder[person]().
		Add(where.Lt(ageField, 18)).
		Or().
		Add(where.Gt(ageField, 29)).
		Build()

	assert.Equal(t, []string{"Bob", ""}, names(criterion.All(people(), p)))
}

// TestBuilder_ConnectiveLastWriteWins verifies that of consecutive
// And/Or calls without an intervening append, the last one decides.
func TestBuilder_ConnectiveLastWriteWins(t *testing.T) {
	p := criterion.NewBuilder[person]().
		Add(where.Lt(ageField, 18)).
		And().
		Or().
		Add(where.Gt(ageField, 29)).
		Build()

	assert.Equal(t, []string{"Bob", ""}, names(criterion.All(people(), p)))
}

// TestBuilder_TrailingConnectiveIsInert verifies And/Or with no
// following append changes nothing about the built predicate.
func TestBuilder_TrailingConnectiveIsInert(t *testing.T) {
	b := criterion.NewBuilder[person]().Add(where.Gt(ageField, 18))
	plain := b.Build()
	trailing := b.Or().Build()

	for _, e := range people() {
		assert.Equal(t, plain.Matches(e), trailing.Matches(e))
	}
}

// TestBuilder_BuildIsPureRead verifies Build can be called repeatedly
// while the builder keeps growing, each call reflecting the state so
// far.
func TestBuilder_BuildIsPureRead(t *testing.T) {
	b := criterion.NewBuilder[person]().Add(where.Gt(ageField, 18))
	adults := b.Build()

	b.And().Add(where.IsTrue(activeField))
	activeAdults := b.Build()

	bob := person{Name: "Bob", Age: 40, IsActive: false}
	assert.True(t, adults.Matches(bob), "earlier build must not see later additions")
	assert.False(t, activeAdults.Matches(bob))
	assert.Equal(t, 2, b.Len())
}

// TestBuilder_AddGroup verifies a sub-group folds to one parenthesized
// node: active AND (minor OR elder).
func TestBuilder_AddGroup(t *testing.T) {
	p := criterion.NewBuilder[person]().
		Add(where.IsTrue(activeField)).
		AddGroup(func(g *criterion.Builder[person]) {
			g.Add(where.Lt(ageField, 21)).Or().Add(where.Gt(ageField, 29))
		}).
		Build()

	assert.Equal(t, []string{"", "Charlie"}, names(criterion.All(people(), p)))

	node, err := p.Describe()
	require.NoError(t, err)
	assert.Equal(t, "(IsActive == true) AND ((Age < 21) OR (Age > 29))", node.String())
}

// TestBuilder_GroupStateDoesNotLeak verifies a child builder's pending
// connective never affects the parent: the parent joins the group with
// its own connective even though the child ended on Or.
func TestBuilder_GroupStateDoesNotLeak(t *testing.T) {
	p := criterion.NewBuilder[person]().
		AddGroup(func(g *criterion.Builder[person]) {
			g.Add(where.Lt(ageField, 18)).Or().Add(where.Gt(ageField, 29)).Or()
		}).
		Add(where.IsTrue(activeField)).
		Build()

	// The trailing Or inside the group must not turn the parent's join
	// into OR: Bob matches the group but is inactive, so AND drops him.
	assert.Equal(t, []string{""}, names(criterion.All(people(), p)))
}

// TestBuilder_NestedGroups verifies unbounded nesting.
func TestBuilder_NestedGroups(t *testing.T) {
	p := criterion.NewBuilder[person]().
		AddGroup(func(g *criterion.Builder[person]) {
			g.Add(where.IsTrue(activeField)).
				AddGroup(func(gg *criterion.Builder[person]) {
					gg.Add(where.Gt(ageField, 24)).Or().Add(where.Eq(nameField, "Charlie"))
				})
		}).
		Build()

	assert.Equal(t, []string{"Alice", "", "Charlie"}, names(criterion.All(people(), p)))
}

// TestBuilder_EmptyGroup verifies an empty sub-group folds to the
// identity predicate and joins normally.
func TestBuilder_EmptyGroup(t *testing.T) {
	p := criterion.NewBuilder[person]().
		Add(where.IsTrue(activeField)).
		AddGroup(func(g *criterion.Builder[person]) {}).
		Build()

	assert.Equal(t, []string{"Alice", "", "Charlie"}, names(criterion.All(people(), p)))
}

// TestBuilder_MisusePanics verifies eager panics on builder misuse.
func TestBuilder_MisusePanics(t *testing.T) {
	t.Run("zero predicate", func(t *testing.T) {
		assert.PanicsWithValue(t, "criterion: predicate cannot be empty", func() {
			criterion.NewBuilder[person]().Add(criterion.Predicate[person]{})
		})
	})

	t.Run("nil group function", func(t *testing.T) {
		assert.PanicsWithValue(t, "criterion: group function cannot be nil", func() {
			criterion.NewBuilder[person]().AddGroup(nil)
		})
	})
}

// TestBuilder_DescriptionCollapsesRuns verifies same-connective runs
// render as one n-ary node while mixed runs keep fold structure.
func TestBuilder_DescriptionCollapsesRuns(t *testing.T) {
	p := criterion.NewBuilder[person]().
		Add(where.Gt(ageField, 18)).
		Add(where.IsTrue(activeField)).
		Add(where.Ne(nameField, "Bob")).
		Build()

	node, err := p.Describe()
	require.NoError(t, err)
	assert.Equal(t, `(Age > 18) AND (IsActive == true) AND (Name != "Bob")`, node.String())
}
