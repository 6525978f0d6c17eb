package criterion

// Field pairs a member name with a compile-time-checked accessor for it.
// The accessor feeds direct evaluation; the name feeds the description
// form handed to translators. Declaring fields once per entity replaces
// runtime reflection over member names:
//
//	var (
//		name = criterion.NewField("Name", func(p Person) string { return p.Name })
//		age  = criterion.NewField("Age", func(p Person) int { return p.Age })
//	)
//
// Field values are immutable and safe to share.
type Field[T, V any] struct {
	// Name is the member name used in descriptions.
	Name string

	// Get extracts the member value from an entity.
	Get func(T) V
}

// NewField creates a named field. Panics if name is empty or get is nil;
// both are required for a field to serve the dual evaluation forms.
func NewField[T, V any](name string, get func(T) V) Field[T, V] {
	if name == "" {
		panic("criterion: field name cannot be empty")
	}
	if get == nil {
		panic("criterion: field accessor cannot be nil")
	}
	return Field[T, V]{Name: name, Get: get}
}
