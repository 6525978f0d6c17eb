package criterion_test

import (
	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/where"
)

// person is the shared test entity. One fixture entry has an empty name
// on purpose: matching is driven by the condition alone, so a blank
// member passes unless a clause rejects it.
type person struct {
	Name     string
	Age      int
	IsActive bool
}

var (
	nameField   = criterion.NewField("Name", func(p person) string { return p.Name })
	ageField    = criterion.NewField("Age", func(p person) int { return p.Age })
	activeField = criterion.NewField("IsActive", func(p person) bool { return p.IsActive })
)

// people returns a fresh copy of the shared fixture.
func people() []person {
	return []person{
		{Name: "Alice", Age: 25, IsActive: true},
		{Name: "Bob", Age: 17, IsActive: false},
		{Name: "", Age: 30, IsActive: true},
		{Name: "Charlie", Age: 20, IsActive: true},
	}
}

// activeAdults builds the canonical condition: Age > 18 AND IsActive.
func activeAdults() criterion.Predicate[person] {
	return criterion.NewBuilder[person]().
		Add(where.Gt(ageField, 18)).
		And().
		Add(where.IsTrue(activeField)).
		Build()
}

func names(items []person) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Name
	}
	return out
}

func age(p person) int { return p.Age }
