package util

const DefaultPageSize = 10

// Calculate turns a 1-based page and page size into an offset/limit pair,
// clamping the size to at most 100.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = DefaultPageSize
	}
	from = (page - 1) * size
	return from, size
}
