package cmd

import (
	"fmt"
	"time"

	"github.com/JVenberg/CodespaceInfoCLI/internal/codespace"
	"github.com/JVenberg/CodespaceInfoCLI/internal/ui"
)

var tableHeaders = []string{"DISPLAY NAME", "REPOSITORY", "STATE", "EXPIRES IN", "LAST USED", "MACHINE", "GIT STATUS"}

// renderTable prints the record set as a styled table with a total footer.
// Records arrive already filtered and sorted.
func renderTable(u *ui.UI, records []codespace.Codespace, now time.Time) {
	if len(records) == 0 {
		u.Dim("No codespaces found matching your criteria.")
		return
	}

	u.Header("GitHub Codespaces")
	rows := make([][]ui.Cell, 0, len(records))
	for _, cs := range records {
		rows = append(rows, []ui.Cell{
			{Text: cs.DisplayName, Style: ui.StyleAccent},
			{Text: cs.Repository},
			stateCell(cs.State),
			expiresCell(cs.ExpiresAt, now),
			{Text: lastUsed(cs.LastUsedAt), Style: ui.StyleInactive},
			{Text: machineName(cs.Machine), Style: ui.StyleInactive},
			{Text: codespace.FormatGitStatus(cs.GitStatus), Style: ui.StyleInactive},
		})
	}
	u.Table(tableHeaders, rows)
	u.Dim("")
	u.Dim(fmt.Sprintf("Total: %d codespace(s)", len(records)))
}

// expiresCell renders the "Expires In" column: "Active" for records that do
// not expire, otherwise a relative duration colored by urgency.
func expiresCell(expiresAt *time.Time, now time.Time) ui.Cell {
	if expiresAt == nil {
		return ui.Cell{Text: "Active", Style: ui.StyleInactive}
	}
	return ui.Cell{
		Text:  codespace.ExpiresIn(*expiresAt, now),
		Style: tierStyle(codespace.ExpiryTier(codespace.DaysUntil(*expiresAt, now))),
	}
}

// stateCell renders the "State" column colored by state tier.
func stateCell(state string) ui.Cell {
	return ui.Cell{Text: state, Style: tierStyle(codespace.StateTier(state))}
}

// tierStyle maps a severity tier to a terminal style. Purely presentational;
// it never affects filter or sort order.
func tierStyle(t codespace.Tier) ui.Style {
	switch t {
	case codespace.TierOK:
		return ui.StyleGood
	case codespace.TierWarning:
		return ui.StyleCaution
	case codespace.TierUrgent:
		return ui.StyleAlert
	default:
		return ui.StyleInactive
	}
}

// lastUsed formats a last-used timestamp as a date, or "Never".
func lastUsed(t *time.Time) string {
	if t == nil {
		return "Never"
	}
	return t.Format("2006-01-02")
}

// machineName returns the machine display name, or "Unknown" when the
// provider omitted machine details.
func machineName(m *codespace.Machine) string {
	if m == nil || m.DisplayName == "" {
		return "Unknown"
	}
	return m.DisplayName
}
