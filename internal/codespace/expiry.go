package codespace

import (
	"fmt"
	"strings"
	"time"
)

// Tier is a severity classification used only for display. Sorting and
// filtering never look at tiers.
type Tier int

const (
	TierNone Tier = iota // no expiration / no signal
	TierOK
	TierWarning
	TierUrgent
)

// DaysUntil returns the number of days from now until t, as a ceiling.
// Negative when t is already in the past.
func DaysUntil(t, now time.Time) int {
	d := t.Sub(now)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// ExpiryTier classifies days-until-expiration for display: urgent under 7
// days (including already expired), warning through 14 days, OK beyond.
func ExpiryTier(days int) Tier {
	switch {
	case days < 7:
		return TierUrgent
	case days <= 14:
		return TierWarning
	default:
		return TierOK
	}
}

// StateTier classifies a provider state for display. "Available" is healthy,
// "Shutdown" warrants attention, anything else is unexpected.
func StateTier(state string) Tier {
	switch strings.ToLower(state) {
	case "available":
		return TierOK
	case "shutdown":
		return TierWarning
	default:
		return TierUrgent
	}
}

// ExpiresIn renders the time from now until expiresAt as a short
// human-relative duration: "12m", "5h", "1 day", "3 days", or "Expired".
func ExpiresIn(expiresAt, now time.Time) string {
	d := expiresAt.Sub(now)
	if d <= 0 {
		return "Expired"
	}

	days := int(d / (24 * time.Hour))
	rem := d % (24 * time.Hour)
	switch {
	case days == 0:
		hours := int(rem / time.Hour)
		if hours == 0 {
			return fmt.Sprintf("%dm", int(rem/time.Minute))
		}
		return fmt.Sprintf("%dh", hours)
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// FormatGitStatus renders a git status summary: "clean" when nothing is
// outstanding, otherwise a comma-joined list like "uncommitted, ↑2".
// A nil status (provider omitted it) renders as "Unknown".
func FormatGitStatus(gs *GitStatus) string {
	if gs == nil {
		return "Unknown"
	}

	var parts []string
	if gs.HasUncommittedChanges {
		parts = append(parts, "uncommitted")
	}
	if gs.HasUnpushedChanges {
		parts = append(parts, "unpushed")
	}
	if gs.Ahead > 0 {
		parts = append(parts, fmt.Sprintf("↑%d", gs.Ahead))
	}
	if gs.Behind > 0 {
		parts = append(parts, fmt.Sprintf("↓%d", gs.Behind))
	}

	if len(parts) == 0 {
		return "clean"
	}
	return strings.Join(parts, ", ")
}
