package criterion

// DistinctBy returns the filtered, ordered elements with later
// duplicates dropped: the first element seen per distinct key survives.
//
// Panics if key is nil.
func DistinctBy[T any, K comparable](items []T, p Predicate[T], key func(T) K, order ...OrderBy[T]) []T {
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	matched := All(items, p, order...)
	seen := make(map[K]struct{}, len(matched))
	out := make([]T, 0, len(matched))
	for _, e := range matched {
		k := key(e)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}

// DuplicatesBy returns the filtered elements whose key occurs more than
// once, flattened back in filtered (and optionally ordered) order.
// Every occurrence of a duplicated key is included.
//
// Panics if key is nil.
func DuplicatesBy[T any, K comparable](items []T, p Predicate[T], key func(T) K, order ...OrderBy[T]) []T {
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	matched := All(items, p, order...)
	counts := make(map[K]int, len(matched))
	for _, e := range matched {
		counts[key(e)]++
	}
	out := make([]T, 0, len(matched))
	for _, e := range matched {
		if counts[key(e)] > 1 {
			out = append(out, e)
		}
	}
	return out
}
