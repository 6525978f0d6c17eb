package criterion

// connective joins a condition node to the sequence before it.
type connective uint8

const (
	connAnd connective = iota
	connOr
)

// nodeKind tags the two condition-node variants a builder records.
type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindGroup
)

// conditionNode is one entry in a builder's ordered sequence: a leaf
// predicate or a folded sub-group, plus the connective joining it to the
// preceding entry. The first entry's connective is never consulted.
type conditionNode[T any] struct {
	kind nodeKind
	pred Predicate[T]
	conn connective
}
