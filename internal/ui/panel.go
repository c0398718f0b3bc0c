package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in a box using the current theme's border.
// Widths are measured without escape sequences.
func Panel(lines []string) string {
	b := Current().Border
	maxw := 0
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := ansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	var sb strings.Builder
	sb.WriteString(b.TopLeft + strings.Repeat(b.Top, maxw+2) + b.TopRight + "\n")
	for _, ln := range lines {
		sb.WriteString(b.Left + " " + pad(ln) + " " + b.Right + "\n")
	}
	sb.WriteString(b.BottomLeft + strings.Repeat(b.Bottom, maxw+2) + b.BottomRight)
	return sb.String()
}

// Plain strips styling, for width checks and tests.
func Plain(s string) string { return ansi.Strip(s) }
