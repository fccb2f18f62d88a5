package repository

// nextID returns one more than the largest id in records, or 1 when records is empty.
// The result never matches a live id, even after deletions.
func nextID[T any](records []T, idOf func(T) int) int {
	highest := 0
	for _, rec := range records {
		if id := idOf(rec); id > highest {
			highest = id
		}
	}
	return highest + 1
}

// pageWindow returns the [start, end) bounds of a 1-indexed page over n records.
// Pages outside the collection, and non-positive page or perPage, give an empty window.
func pageWindow(n, page, perPage int) (int, int) {
	if page < 1 || perPage < 1 {
		return 0, 0
	}
	// keeps (page-1)*perPage from overflowing
	if page-1 > n/perPage {
		return n, n
	}

	start := (page - 1) * perPage
	if start >= n {
		return n, n
	}
	end := start + perPage
	if end > n || end < start {
		end = n
	}
	return start, end
}
