// Package view turns the current item list into a display structure.
// It holds no state and never mutates items; user actions are routed back
// through the handlers.
package view

import "github.com/idilsaglam/remotetodo/internal/model"

const (
	EmptyMessage = "There is no todos!"

	StatusDone    = "Done"
	StatusNotDone = "Not Done"

	ActionRemove = "remove"

	// Accessible names of the submission form.
	FormName             = "form"
	TitleFieldName       = "todo title"
	DescriptionFieldName = "todo description"
)

// Handlers receive row actions, keyed by item id.
type Handlers struct {
	OnToggle func(id string)
	OnDelete func(id string)
}

// Action is an activatable control on a row.
type Action struct {
	Name  string
	Label string

	fire func()
}

// Activate runs the handler bound to the action. A nil handler is a no-op.
func (a Action) Activate() {
	if a.fire != nil {
		a.fire()
	}
}

type Row struct {
	Key         string
	Title       string
	Description string
	Completed   bool
	Status      string
	Toggle      Action
	Delete      Action
}

// List is the rendered list. Exactly one of Placeholder or Rows is set.
type List struct {
	Placeholder string
	Rows        []Row
}

func (l List) Empty() bool { return len(l.Rows) == 0 }

// IndexOf returns the position of the row with key, or -1.
func (l List) IndexOf(key string) int {
	for i, r := range l.Rows {
		if r.Key == key {
			return i
		}
	}
	return -1
}

func (l List) Find(key string) (Row, bool) {
	i := l.IndexOf(key)
	if i < 0 {
		return Row{}, false
	}
	return l.Rows[i], true
}

// Render builds one row per item in order, or the empty placeholder.
func Render(items []model.Item, h Handlers) List {
	if len(items) == 0 {
		return List{Placeholder: EmptyMessage}
	}
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, renderRow(it, h))
	}
	return List{Rows: rows}
}

func renderRow(it model.Item, h Handlers) Row {
	id := it.ID
	status := StatusNotDone
	if it.Completed {
		status = StatusDone
	}
	r := Row{
		Key:         id,
		Title:       it.Title,
		Description: it.Body,
		Completed:   it.Completed,
		Status:      status,
		Toggle:      Action{Name: status, Label: "Mark " + it.Title + " as " + flip(status)},
		Delete:      Action{Name: ActionRemove, Label: "Remove " + it.Title},
	}
	if h.OnToggle != nil {
		r.Toggle.fire = func() { h.OnToggle(id) }
	}
	if h.OnDelete != nil {
		r.Delete.fire = func() { h.OnDelete(id) }
	}
	return r
}

func flip(status string) string {
	if status == StatusDone {
		return "not done"
	}
	return "done"
}
