package criterion

// The grouping family filters first, then partitions the matches by a
// caller-supplied key. Results are Go maps: iteration order is
// intentionally unspecified, while the member slices inside each group
// keep filtered source order. All key and selector functions must be
// non-nil; passing nil is misuse and panics.

// GroupBy partitions the matching elements by key.
func GroupBy[T any, K comparable](items []T, p Predicate[T], key func(T) K) map[K][]T {
	p.mustBeBuilt()
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	groups := make(map[K][]T)
	for _, e := range items {
		if p.fn(e) {
			k := key(e)
			groups[k] = append(groups[k], e)
		}
	}
	return groups
}

// CountByGroup returns the matching-member count per key.
func CountByGroup[T any, K comparable](items []T, p Predicate[T], key func(T) K) map[K]int {
	p.mustBeBuilt()
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	counts := make(map[K]int)
	for _, e := range items {
		if p.fn(e) {
			counts[key(e)]++
		}
	}
	return counts
}

// SumByGroup sums the projection of each group's matching members.
func SumByGroup[T any, K comparable, N Number](items []T, p Predicate[T], key func(T) K, sel func(T) N) map[K]N {
	p.mustBeBuilt()
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	sums := make(map[K]N)
	for _, e := range items {
		if p.fn(e) {
			sums[key(e)] += sel(e)
		}
	}
	return sums
}

// MinByGroup returns the smallest projected value per key. A key is
// present only when its group is non-empty, so no empty-result error
// can arise.
func MinByGroup[T any, K comparable, N Number](items []T, p Predicate[T], key func(T) K, sel func(T) N) map[K]N {
	p.mustBeBuilt()
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	mins := make(map[K]N)
	for _, e := range items {
		if !p.fn(e) {
			continue
		}
		k, v := key(e), sel(e)
		if cur, ok := mins[k]; !ok || v < cur {
			mins[k] = v
		}
	}
	return mins
}

// MaxByGroup returns the largest projected value per key.
func MaxByGroup[T any, K comparable, N Number](items []T, p Predicate[T], key func(T) K, sel func(T) N) map[K]N {
	p.mustBeBuilt()
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	maxs := make(map[K]N)
	for _, e := range items {
		if !p.fn(e) {
			continue
		}
		k, v := key(e), sel(e)
		if cur, ok := maxs[k]; !ok || v > cur {
			maxs[k] = v
		}
	}
	return maxs
}

// AverageByGroup returns the mean projected value per key, always as a
// float64 so integer projections do not truncate.
func AverageByGroup[T any, K comparable, N Number](items []T, p Predicate[T], key func(T) K, sel func(T) N) map[K]float64 {
	p.mustBeBuilt()
	if key == nil {
		panic("criterion: key function cannot be nil")
	}
	if sel == nil {
		panic("criterion: selector cannot be nil")
	}
	sums := make(map[K]float64)
	counts := make(map[K]int)
	for _, e := range items {
		if p.fn(e) {
			k := key(e)
			sums[k] += float64(sel(e))
			counts[k]++
		}
	}
	avgs := make(map[K]float64, len(sums))
	for k, sum := range sums {
		avgs[k] = sum / float64(counts[k])
	}
	return avgs
}

// DuplicatesByGroup returns only the groups holding more than one
// matching member.
func DuplicatesByGroup[T any, K comparable](items []T, p Predicate[T], key func(T) K) map[K][]T {
	groups := GroupBy(items, p, key)
	for k, g := range groups {
		if len(g) <= 1 {
			delete(groups, k)
		}
	}
	return groups
}

// UniquesByGroup returns the single member of each group holding
// exactly one matching member.
func UniquesByGroup[T any, K comparable](items []T, p Predicate[T], key func(T) K) map[K]T {
	groups := GroupBy(items, p, key)
	uniques := make(map[K]T, len(groups))
	for k, g := range groups {
		if len(g) == 1 {
			uniques[k] = g[0]
		}
	}
	return uniques
}

// TopByGroup returns up to count members per group, under an optional
// intra-group ordering; without one, members keep filtered source
// order. count below 1 reports a *ArgumentError.
func TopByGroup[T any, K comparable](items []T, p Predicate[T], key func(T) K, count int, order ...OrderBy[T]) (map[K][]T, error) {
	if count < 1 {
		return nil, &ArgumentError{Name: "count", Reason: "must be at least 1"}
	}
	groups := GroupBy(items, p, key)
	for k, g := range groups {
		sortInPlace(g, order)
		if len(g) > count {
			g = g[:count]
		}
		groups[k] = g
	}
	return groups, nil
}
