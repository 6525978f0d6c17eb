package criterion_test

import (
	"testing"

	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/stretchr/testify/assert"
)

// TestNewField verifies construction and access.
func TestNewField(t *testing.T) {
	f := criterion.NewField("Age", func(p person) int { return p.Age })

	assert.Equal(t, "Age", f.Name)
	assert.Equal(t, 25, f.Get(person{Age: 25}))
}

// TestNewField_MisusePanics verifies a field needs both a name and an
// accessor.
func TestNewField_MisusePanics(t *testing.T) {
	assert.PanicsWithValue(t, "criterion: field name cannot be empty", func() {
		criterion.NewField("", func(p person) int { return p.Age })
	})
	assert.PanicsWithValue(t, "criterion: field accessor cannot be nil", func() {
		criterion.NewField[person, int]("Age", nil)
	})
}
