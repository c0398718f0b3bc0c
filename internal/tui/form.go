package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/remotetodo/internal/store"
	"github.com/idilsaglam/remotetodo/internal/view"
)

// form is the two-field submission form. Both fields are required.
type form struct {
	fields []textinput.Model
	labels []string
	focus  int
	err    string
}

const (
	fieldTitle = iota
	fieldDescription
)

func newForm() form {
	title := textinput.New()
	title.Prompt = "> "
	title.Placeholder = "New item title..."
	title.CharLimit = 200

	desc := textinput.New()
	desc.Prompt = "> "
	desc.Placeholder = "What needs doing..."
	desc.CharLimit = 500

	return form{
		fields: []textinput.Model{title, desc},
		labels: []string{view.TitleFieldName, view.DescriptionFieldName},
	}
}

func (f *form) open() tea.Cmd {
	f.reset()
	return f.setFocus(fieldTitle)
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].SetValue("")
		f.fields[i].Blur()
	}
	f.focus = fieldTitle
	f.err = ""
}

func (f *form) setFocus(i int) tea.Cmd {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range f.fields {
		if j == f.focus {
			cmd = f.fields[j].Focus()
		} else {
			f.fields[j].Blur()
		}
	}
	return cmd
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return cmd
}

// Value returns the raw input of a field by its accessible name.
func (f form) Value(name string) string {
	for i, l := range f.labels {
		if l == name {
			return f.fields[i].Value()
		}
	}
	return ""
}

// validate checks the required fields in display order and moves focus
// to the first empty one.
func (f *form) validate() (title, description string, err error) {
	title = strings.TrimSpace(f.fields[fieldTitle].Value())
	description = strings.TrimSpace(f.fields[fieldDescription].Value())
	switch {
	case title == "":
		f.setFocus(fieldTitle)
		return "", "", store.Required("title")
	case description == "":
		f.setFocus(fieldDescription)
		return "", "", store.Required("description")
	}
	return title, description, nil
}
