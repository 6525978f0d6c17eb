package criterion_test

import (
	"testing"
	"time"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAscending verifies smallest-first ordering by a named field.
func TestAscending(t *testing.T) {
	got := criterion.All(people(), criterion.True[person](), criterion.Ascending(ageField))
	assert.Equal(t, []string{"Bob", "Charlie", "Alice", ""}, names(got))
}

// TestDescending verifies largest-first ordering.
func TestDescending(t *testing.T) {
	got := criterion.All(people(), criterion.True[person](), criterion.Descending(ageField))
	assert.Equal(t, []string{"", "Alice", "Charlie", "Bob"}, names(got))
}

// TestOrderBy_Then verifies chained tie-breakers apply in declaration
// order.
func TestOrderBy_Then(t *testing.T) {
	items := []person{
		{Name: "Dana", Age: 25},
		{Name: "Alice", Age: 25},
		{Name: "Bob", Age: 17},
		{Name: "Carol", Age: 25},
	}

	byAgeThenName := criterion.Ascending(ageField).Then(criterion.Ascending(nameField))
	got := criterion.All(items, criterion.True[person](), byAgeThenName)
	assert.Equal(t, []string{"Bob", "Alice", "Carol", "Dana"}, names(got))
}

// TestOrderBy_ThenReturnsNewValue verifies Then never mutates its
// receiver: OrderBy values are freely shareable.
func TestOrderBy_ThenReturnsNewValue(t *testing.T) {
	base := criterion.Ascending(ageField)
	extended := base.Then(criterion.Descending(nameField))

	baseTerms, err := base.Terms()
	require.NoError(t, err)
	assert.Len(t, baseTerms, 1)

	extendedTerms, err := extended.Terms()
	require.NoError(t, err)
	assert.Len(t, extendedTerms, 2)
}

// TestOrderBy_Stability verifies elements equal under every term keep
// their source order.
func TestOrderBy_Stability(t *testing.T) {
	items := []person{
		{Name: "first", Age: 25},
		{Name: "second", Age: 25},
		{Name: "third", Age: 25},
	}

	got := criterion.All(items, criterion.True[person](), criterion.Ascending(ageField))
	assert.Equal(t, []string{"first", "second", "third"}, names(got))
}

// TestOrderBy_ZeroPreservesSourceOrder verifies absent ordering leaves
// the source sequence exactly as given.
func TestOrderBy_ZeroPreservesSourceOrder(t *testing.T) {
	var none criterion.OrderBy[person]
	assert.True(t, none.IsZero())

	got := criterion.All(people(), criterion.True[person](), none)
	assert.Equal(t, names(people()), names(got))
}

// TestAscendingKey verifies unnamed key extractors order in memory but
// refuse translation.
func TestAscendingKey(t *testing.T) {
	byNameLen := criterion.AscendingKey(func(p person) int { return len(p.Name) })

	got := criterion.All(people(), criterion.True[person](), byNameLen)
	assert.Equal(t, []string{"", "Bob", "Alice", "Charlie"}, names(got))

	_, err := byNameLen.Terms()
	require.Error(t, err)
	assert.ErrorIs(t, err, criterion.ErrNotTranslatable)
}

// TestDescendingKey verifies the descending unnamed variant.
func TestDescendingKey(t *testing.T) {
	byNameLen := criterion.DescendingKey(func(p person) int { return len(p.Name) })

	got := criterion.All(people(), criterion.True[person](), byNameLen)
	assert.Equal(t, []string{"Charlie", "Alice", "Bob", ""}, names(got))
}

// TestOrderingFunc verifies the comparator escape hatch for key types
// without a natural order.
func TestOrderingFunc(t *testing.T) {
	type event struct {
		Name    string
		Created time.Time
	}
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []event{
		{Name: "later", Created: base.Add(time.Hour)},
		{Name: "earlier", Created: base},
	}

	byCreated := criterion.OrderingFunc(func(a, b event) int {
		return a.Created.Compare(b.Created)
	})

	got := criterion.All(items, criterion.True[event](), byCreated)
	assert.Equal(t, "earlier", got[0].Name)
}

// TestOrderBy_Terms verifies the description side used by translators.
func TestOrderBy_Terms(t *testing.T) {
	terms, err := criterion.Descending(ageField).Then(criterion.Ascending(nameField)).Terms()
	require.NoError(t, err)
	assert.Equal(t, []criterion.OrderTerm{
		{Member: "Age", Desc: true},
		{Member: "Name"},
	}, terms)
}

// TestOrderBy_ConstructorPanics verifies nil-function misuse panics.
func TestOrderBy_ConstructorPanics(t *testing.T) {
	assert.PanicsWithValue(t, "criterion: field accessor cannot be nil", func() {
		criterion.Ascending(criterion.Field[person, int]{Name: "Age"})
	})
	assert.PanicsWithValue(t, "criterion: key function cannot be nil", func() {
		criterion.AscendingKey[person, int](nil)
	})
	assert.PanicsWithValue(t, "criterion: compare function cannot be nil", func() {
		criterion.OrderingFunc[person](nil)
	})
}
