package criterion_test

import (
	"testing"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/where"
	"github.com/stretchr/testify/assert"
)

// dupPeople returns a fixture with repeated ages for key-based tests.
func dupPeople() []person {
	return []person{
		{Name: "Alice", Age: 25, IsActive: true},
		{Name: "Bob", Age: 17, IsActive: false},
		{Name: "Carol", Age: 25, IsActive: true},
		{Name: "Dave", Age: 30, IsActive: true},
		{Name: "Erin", Age: 25, IsActive: false},
		{Name: "Frank", Age: 30, IsActive: true},
	}
}

// TestDistinctBy verifies the first element per key survives and later
// duplicates drop.
func TestDistinctBy(t *testing.T) {
	got := criterion.DistinctBy(dupPeople(), criterion.True[person](), age)
	assert.Equal(t, []string{"Alice", "Bob", "Dave"}, names(got))
}

// TestDistinctBy_NeverRepeatsAKey verifies the distinct property for
// any predicate.
func TestDistinctBy_NeverRepeatsAKey(t *testing.T) {
	got := criterion.DistinctBy(dupPeople(), where.IsTrue(activeField), age)

	seen := make(map[int]bool)
	for _, p := range got {
		assert.False(t, seen[p.Age], "key %d appeared twice", p.Age)
		seen[p.Age] = true
	}
}

// TestDistinctBy_OrderAppliesBeforeSelection verifies ordering changes
// which element represents each key.
func TestDistinctBy_OrderAppliesBeforeSelection(t *testing.T) {
	got := criterion.DistinctBy(dupPeople(), criterion.True[person](), age,
		criterion.Descending(nameField))
	assert.Equal(t, []string{"Frank", "Erin", "Bob"}, names(got))
}

// TestDuplicatesBy verifies only elements of multi-member key groups
// come back, every member included, in filtered order.
func TestDuplicatesBy(t *testing.T) {
	got := criterion.DuplicatesBy(dupPeople(), criterion.True[person](), age)
	assert.Equal(t, []string{"Alice", "Carol", "Dave", "Erin", "Frank"}, names(got))
}

// TestDuplicatesBy_FilterShrinksGroups verifies grouping happens after
// filtering: a key duplicated in the source but not among matches is
// not a duplicate.
func TestDuplicatesBy_FilterShrinksGroups(t *testing.T) {
	// Active only: Alice(25), Carol(25), Dave(30), Frank(30).
	got := criterion.DuplicatesBy(dupPeople(), where.IsTrue(activeField), age)
	assert.Equal(t, []string{"Alice", "Carol", "Dave", "Frank"}, names(got))

	// Inactive only: Bob(17), Erin(25) hold distinct keys, so nothing
	// is duplicated even though age 25 repeats in the full source.
	got = criterion.DuplicatesBy(dupPeople(), where.IsFalse(activeField), age)
	assert.Empty(t, got)
}

// TestDistinctBy_NilKeyPanics verifies key-function misuse panics.
func TestDistinctBy_NilKeyPanics(t *testing.T) {
	assert.PanicsWithValue(t, "criterion: key function cannot be nil", func() {
		criterion.DistinctBy[person, int](people(), activeAdults(), nil)
	})
	assert.PanicsWithValue(t, "criterion: key function cannot be nil", func() {
		criterion.DuplicatesBy[person, int](people(), activeAdults(), nil)
	})
}
