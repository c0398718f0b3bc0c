package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/store"
	"github.com/idilsaglam/remotetodo/internal/ui"
	"github.com/idilsaglam/remotetodo/internal/view"
)

const loadingText = "Loading..."

func (m Model) View() string {
	t := ui.Current()
	var b strings.Builder

	st := m.r.state
	switch st.Kind {
	case store.Idle, store.Loading:
		b.WriteString(t.Title.Render("Todos") + "\n\n")
		b.WriteString(m.spinner.View() + " " + loadingText)
	case store.Failed:
		b.WriteString(t.Title.Render("Todos") + "\n\n")
		b.WriteString(t.Error.Render(st.Message) + "\n")
		b.WriteString(t.Muted.Render("press r to try again"))
	case store.Ready:
		b.WriteString(header(st.Items) + "\n\n")
		if m.r.list.Empty() {
			b.WriteString(t.Muted.Render(m.r.list.Placeholder))
		} else {
			b.WriteString(m.list.View())
		}
		if m.adding {
			b.WriteString("\n\n" + m.renderForm())
		}
	}
	if m.flash != "" {
		b.WriteString("\n" + t.Success.Render(t.SymDone+" "+m.flash))
	}

	b.WriteString("\n\n")
	if m.adding {
		b.WriteString(m.help.View(m.formKeys))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return panelString(b.String())
}

func header(items []model.Item) string {
	t := ui.Current()
	done, pending := model.Stats(items)
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(items),
	)
	return title + "\n" + t.Muted.Render(ui.ProgressBar(done, done+pending, 28))
}

func (m Model) renderForm() string {
	t := ui.Current()
	bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	title := "Add new item"
	if m.form.err != "" {
		title += ": " + t.Error.Render(m.form.err)
	}
	var b strings.Builder
	b.WriteString(title)
	for i, f := range m.form.fields {
		b.WriteString("\n" + t.Muted.Render(m.form.labels[i]) + "\n" + f.View())
	}
	return bar.Render(b.String())
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(ui.Current().Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

// plainLines draws every row without a cursor, or the placeholder.
func plainLines(l view.List) []string {
	if l.Empty() {
		return []string{ui.Current().Muted.Render(l.Placeholder)}
	}
	out := make([]string, 0, len(l.Rows))
	for _, r := range l.Rows {
		out = append(out, rowLine(r, false, 0))
	}
	return out
}

// groupLines splits rows into pending and done sections.
func groupLines(l view.List) []string {
	t := ui.Current()
	var pend, done view.List
	for _, r := range l.Rows {
		if r.Completed {
			done.Rows = append(done.Rows, r)
		} else {
			pend.Rows = append(pend.Rows, r)
		}
	}
	section := func(name string, rows view.List) []string {
		lines := []string{t.Accent.Render(name)}
		if rows.Empty() {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, plainLines(rows)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

// RenderPlain draws items the way the list looks in the TUI, without a
// cursor. Used by one-shot commands. group splits pending and done items.
func RenderPlain(items []model.Item, group bool) string {
	lines := strings.Split(header(items), "\n")
	lines = append(lines, "")
	l := view.Render(items, view.Handlers{})
	if group && !l.Empty() {
		lines = append(lines, groupLines(l)...)
	} else {
		lines = append(lines, plainLines(l)...)
	}
	return ui.Panel(lines)
}
