package listview

import "strings"

// Filter keeps the rows where any searchable field contains query,
// ignoring case. An empty query returns rows unchanged.
func Filter[R any](rows []R, query string, searchable func(R) []string) []R {
	if query == "" || searchable == nil {
		return rows
	}
	q := strings.ToLower(query)

	out := make([]R, 0, len(rows))
	for _, r := range rows {
		for _, f := range searchable(r) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Paginate returns rows[page*size : (page+1)*size], clamped to the
// collection. Out of range pages and non-positive sizes yield an empty
// slice.
func Paginate[R any](rows []R, page, size int) []R {
	if page < 0 || size <= 0 || page > len(rows)/size {
		return []R{}
	}
	start := page * size
	if start >= len(rows) {
		return []R{}
	}
	end := min(start+size, len(rows))
	return rows[start:end:end]
}

// PageCount is the number of pages needed for total rows.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
