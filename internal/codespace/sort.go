package codespace

import "sort"

// SortByExpiration returns a new slice ordered ascending by expiration time.
// Records without an expiration sort after all expiring records and keep
// their fetch order among themselves. Equal expirations break by ID so the
// output is deterministic across runs.
func SortByExpiration(records []Codespace) []Codespace {
	out := make([]Codespace, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.ExpiresAt == nil && b.ExpiresAt == nil:
			return false // stable sort keeps fetch order
		case a.ExpiresAt == nil:
			return false
		case b.ExpiresAt == nil:
			return true
		case a.ExpiresAt.Equal(*b.ExpiresAt):
			return a.ID < b.ID
		default:
			return a.ExpiresAt.Before(*b.ExpiresAt)
		}
	})

	return out
}
