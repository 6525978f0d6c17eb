package criterion

// Page returns one page of the filtered, ordered result: the window
// [(page-1)*pageSize, page*pageSize). Pages are 1-based. A page past the
// end of the filtered set yields an empty, non-nil slice rather than an
// error. page and pageSize below 1 report a *ArgumentError.
func Page[T any](items []T, p Predicate[T], page, pageSize int, order ...OrderBy[T]) ([]T, error) {
	if page < 1 {
		return nil, &ArgumentError{Name: "page", Reason: "must be at least 1"}
	}
	if pageSize < 1 {
		return nil, &ArgumentError{Name: "pageSize", Reason: "must be at least 1"}
	}
	matched := All(items, p, order...)
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []T{}, nil
	}
	end := min(start+pageSize, len(matched))
	return matched[start:end], nil
}

// Top returns the first count elements of the filtered, ordered result,
// or the whole result when it holds fewer. count below 1 reports a
// *ArgumentError.
func Top[T any](items []T, p Predicate[T], count int, order ...OrderBy[T]) ([]T, error) {
	if count < 1 {
		return nil, &ArgumentError{Name: "count", Reason: "must be at least 1"}
	}
	matched := All(items, p, order...)
	if count >= len(matched) {
		return matched, nil
	}
	return matched[:count], nil
}
