package codespace

import (
	"strings"
	"time"
)

// Criteria are optional, independently combinable filters. All supplied
// criteria must match (logical AND); zero criteria matches everything.
type Criteria struct {
	MaxDays    *int   // nil means no expiration filter
	Repository string // case-insensitive substring of the repository name
	State      string // case-insensitive exact state match
}

// Filter returns the records matching the criteria, preserving input order.
// The input slice is never mutated.
func Filter(records []Codespace, c Criteria, now time.Time) []Codespace {
	out := make([]Codespace, 0, len(records))
	for _, cs := range records {
		if c.matches(cs, now) {
			out = append(out, cs)
		}
	}
	return out
}

func (c Criteria) matches(cs Codespace, now time.Time) bool {
	if c.Repository != "" && !strings.Contains(strings.ToLower(cs.Repository), strings.ToLower(c.Repository)) {
		return false
	}
	if c.State != "" && !strings.EqualFold(cs.State, c.State) {
		return false
	}
	if c.MaxDays != nil {
		// Records that never expire are not "expiring within N days".
		if cs.ExpiresAt == nil {
			return false
		}
		if DaysUntil(*cs.ExpiresAt, now) > *c.MaxDays {
			return false
		}
	}
	return true
}
