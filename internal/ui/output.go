package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Style selects how a table cell or status string is rendered on a TTY.
// Non-TTY output ignores styles entirely.
type Style int

const (
	StylePlain Style = iota
	StyleGood         // green
	StyleCaution      // yellow
	StyleAlert        // red
	StyleAccent       // cyan
	StyleInactive     // faint
)

// Cell is a table cell with an optional style.
type Cell struct {
	Text  string
	Style Style
}

// Header prints a section header: "==> msg" in bold blue.
func (u *UI) Header(msg string) {
	if u.isTTY {
		style := u.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
		u.println(style.Render("==> " + msg))
	} else {
		u.println("==> " + msg)
	}
}

// Keyval prints a label-value pair: "  label   value" with bold fixed-width label.
func (u *UI) Keyval(key, value string) {
	padded := fmt.Sprintf("%-12s", key)
	if u.isTTY {
		style := u.renderer.NewStyle().Bold(true)
		u.printf("  %s%s\n", style.Render(padded), value)
	} else {
		u.printf("  %s%s\n", padded, value)
	}
}

// Dim prints dimmed text.
func (u *UI) Dim(msg string) {
	if u.isTTY {
		style := u.renderer.NewStyle().Faint(true)
		u.println(style.Render(msg))
	} else {
		u.println(msg)
	}
}

// Error prints an error message: "error: msg" to errOut.
// Only the "error:" prefix is styled to prevent lipgloss from mangling
// multi-line message bodies.
func (u *UI) Error(msg string) {
	if u.isTTY {
		prefix := u.renderer.NewStyle().Foreground(lipgloss.Color("1")).Render("error:")
		_, _ = fmt.Fprintf(u.errOut, "%s %s\n", prefix, msg)
	} else {
		_, _ = fmt.Fprintln(u.errOut, "error: "+msg)
	}
}

// Warn prints a warning message: "warning: msg" to errOut.
func (u *UI) Warn(msg string) {
	if u.isTTY {
		prefix := u.renderer.NewStyle().Foreground(lipgloss.Color("3")).Render("warning:")
		_, _ = fmt.Fprintf(u.errOut, "%s %s\n", prefix, msg)
	} else {
		_, _ = fmt.Fprintln(u.errOut, "warning: "+msg)
	}
}

// Table prints a column-aligned table with bold headers. Column widths are
// computed on the unstyled cell text, so styling never shifts alignment.
func (u *UI) Table(headers []string, rows [][]Cell) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell.Text) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell.Text)
			}
		}
	}

	var hdr strings.Builder
	for i, h := range headers {
		if i > 0 {
			hdr.WriteString("  ")
		}
		hdr.WriteString(pad(h, widths[i]))
	}
	if u.isTTY {
		style := u.renderer.NewStyle().Bold(true)
		u.println(style.Render(hdr.String()))
	} else {
		u.println(hdr.String())
	}

	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			text := cell.Text
			if i < len(widths) {
				text = pad(text, widths[i])
			}
			line.WriteString(u.styled(text, cell.Style))
		}
		u.println(line.String())
	}
}

// styled applies a cell style on TTY output; padding happens before styling
// so ANSI sequences never count toward column widths.
func (u *UI) styled(text string, style Style) string {
	if !u.isTTY || style == StylePlain {
		return text
	}
	s := u.renderer.NewStyle()
	switch style {
	case StyleGood:
		s = s.Foreground(lipgloss.Color("2"))
	case StyleCaution:
		s = s.Foreground(lipgloss.Color("3"))
	case StyleAlert:
		s = s.Foreground(lipgloss.Color("1"))
	case StyleAccent:
		s = s.Foreground(lipgloss.Color("6"))
	case StyleInactive:
		s = s.Faint(true)
	}
	return s.Render(text)
}

// pad right-pads text with spaces to the given rune width.
func pad(text string, width int) string {
	n := width - utf8.RuneCountInString(text)
	if n <= 0 {
		return text
	}
	return text + strings.Repeat(" ", n)
}

// println writes a line to out, discarding errors (not recoverable in CLI output).
func (u *UI) println(msg string) {
	_, _ = fmt.Fprintln(u.out, msg)
}

// printf writes formatted output to out, discarding errors.
func (u *UI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(u.out, format, args...)
}
