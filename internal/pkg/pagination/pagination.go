package pagination

import "fmt"

// Page returns page (1-indexed) of size items and the total page count.
// A page past the end is empty; a page below one is treated as the first.
func Page[T any](items []T, page, size int) ([]T, int) {
	if size <= 0 {
		return []T{}, 0
	}
	totalPages := (len(items) + size - 1) / size

	if page < 1 {
		page = 1
	}
	// compare before multiplying so huge pages cannot overflow start
	if page > totalPages {
		return []T{}, totalPages
	}
	start := (page - 1) * size
	end := min(start+size, len(items))

	return items[start:end], totalPages
}

// Showing generates the "X-Y of Z results" text for a page holding shown items
func Showing(page, limit, shown, total int) string {
	if total == 0 || shown == 0 || page < 1 || limit <= 0 {
		return fmt.Sprintf("0 of %d results", total)
	}
	if page-1 > (total-1)/limit {
		return fmt.Sprintf("0 of %d results", total)
	}

	start := (page-1)*limit + 1
	end := min(start+shown-1, total)

	return fmt.Sprintf("%d-%d of %d results", start, end, total)
}
