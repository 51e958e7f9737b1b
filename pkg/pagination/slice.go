package pagination

// Slice returns items[offset:offset+limit] clamped to the bounds of items.
func Slice[T any](items []T, offset, limit int) []T {
	if offset < 0 || limit <= 0 || offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) || end < offset {
		end = len(items)
	}
	return items[offset:end]
}
