package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/remotetodo/internal/ui"
	"github.com/idilsaglam/remotetodo/internal/view"
)

// listRow adapts a rendered view.Row to bubbles/list.Item
type listRow struct {
	view.Row
}

func (r listRow) FilterValue() string { return r.Title }

func toListItems(l view.List) []list.Item {
	out := make([]list.Item, 0, len(l.Rows))
	for _, r := range l.Rows {
		out = append(out, listRow{Row: r})
	}
	return out
}

// Custom delegate to control how rows render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(listRow)
	if !ok {
		return
	}
	fmt.Fprint(w, rowLine(r.Row, index == m.Index(), m.Width()))
}

// rowLine draws one row: marker, box, title, description and status label.
func rowLine(r view.Row, selected bool, width int) string {
	t := ui.Current()
	box, text := t.Muted.Render(t.BoxUnchecked), r.Title
	status := t.Pending.Render("[" + r.Status + "]")
	if r.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(r.Title)
		status = t.Success.Render("[" + r.Status + "]")
	}
	line := box + " " + text
	if r.Description != "" {
		line += "  " + t.Muted.Render(r.Description)
	}
	line += "  " + status

	prefix := "  "
	if selected {
		prefix = t.Selected.Render(strings.TrimRight(t.Cursor, " ")) + " "
	}
	line = prefix + line
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
