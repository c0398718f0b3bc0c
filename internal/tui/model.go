// Package tui hosts the todo list in a Bubble Tea program: it mounts the
// store, triggers the initial load and routes keys to the store's mutators.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/source"
	"github.com/idilsaglam/remotetodo/internal/store"
	"github.com/idilsaglam/remotetodo/internal/view"
)

// Lines around the list: panel border (2), header (2) and its gap (1),
// help line and its gap (2), flash line (1).
const chromeLines = 8

// formLines is what the open form adds below the list: gap (1), border (2),
// title (1), two label+input pairs (4).
const formLines = 8

const minListHeight = 3

// loadedMsg carries a fetch result back into the update loop.
type loadedMsg struct {
	ticket store.Ticket
	items  []model.Item
	err    error
}

// rendered is refreshed by the store subscription; shared by every copy
// of the Model value.
type rendered struct {
	state store.State
	list  view.List
}

type Model struct {
	store *store.Store
	src   source.Source
	ctx   context.Context
	stop  context.CancelFunc

	r *rendered

	list      list.Model
	cursorKey string

	adding bool
	form   form
	flash  string

	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	formKeys formKeyMap

	width, height int
	log           *logrus.Entry
}

type Options struct {
	Source source.Source
	// Store defaults to a fresh store.
	Store  *store.Store
	Logger *logrus.Logger
}

func New(opt Options) Model {
	logger := opt.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	st := opt.Store
	if st == nil {
		st = store.New(store.WithLogger(logger))
	}
	ctx, stop := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()

	m := Model{
		store:    st,
		src:      opt.Source,
		ctx:      ctx,
		stop:     stop,
		r:        &rendered{},
		list:     l,
		form:     newForm(),
		spinner:  sp,
		help:     help.New(),
		keys:     defaultKeys(),
		formKeys: defaultFormKeys(),
		width:    80,
		height:   24,
		log:      logger.WithField("component", "tui"),
	}
	handlers := view.Handlers{
		OnToggle: func(id string) { st.ToggleCompleted(id) },
		OnDelete: func(id string) { st.Remove(id) },
	}
	r := m.r
	st.Subscribe(func(s store.State) {
		r.state = s
		r.list = view.Render(s.Items, handlers)
	})
	r.state = st.State()
	r.list = view.Render(r.state.Items, handlers)
	m.resize()
	m.syncList()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spinner.Tick)
}

// load starts a fetch unless one is already outstanding.
func (m Model) load() tea.Cmd {
	if m.src == nil {
		return nil
	}
	ticket, err := m.store.BeginLoad()
	if err != nil {
		if !errors.Is(err, store.ErrLoadInFlight) {
			m.log.WithError(err).Debug("load not started")
		}
		return nil
	}
	src, ctx := m.src, m.ctx
	return func() tea.Msg {
		items, err := src.FetchItems(ctx)
		return loadedMsg{ticket: ticket, items: items, err: err}
	}
}

// teardown closes the store so a late fetch result is dropped.
func (m Model) teardown() {
	m.stop()
	m.store.Close()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case loadedMsg:
		if m.store.FinishLoad(msg.ticket, msg.items, msg.err) {
			m.cursorKey = ""
			m.list.ResetSelected()
			m.syncList()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.r.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.adding {
		return m.updateForm(msg)
	}

	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}
	m.flash = ""

	switch {
	case key.Matches(km, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(km, m.keys.Reload):
		cmd := m.load()
		if cmd == nil {
			return m, nil
		}
		return m, tea.Batch(cmd, m.spinner.Tick)
	}

	if m.r.state.Kind != store.Ready {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Toggle):
		if row, ok := m.selected(); ok {
			row.Toggle.Activate()
			m.syncList()
		}
		return m, nil
	case key.Matches(km, m.keys.Remove):
		if row, ok := m.selected(); ok {
			row.Delete.Activate()
			m.syncList()
		}
		return m, nil
	case key.Matches(km, m.keys.Add):
		m.adding = true
		m.resize()
		return m, m.form.open()
	}

	// Navigation and paging belong to the list.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if row, ok := m.selected(); ok {
		m.cursorKey = row.Key
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, m.form.update(msg)
	}
	switch {
	case key.Matches(km, m.formKeys.Quit):
		m.teardown()
		return m, tea.Quit
	case key.Matches(km, m.formKeys.Cancel):
		m.closeForm()
		return m, nil
	case key.Matches(km, m.formKeys.Next):
		return m, m.form.setFocus(m.form.focus + 1)
	case key.Matches(km, m.formKeys.Prev):
		return m, m.form.setFocus(m.form.focus - 1)
	case key.Matches(km, m.formKeys.Submit):
		return m.submit()
	}
	return m, m.form.update(msg)
}

func (m *Model) closeForm() {
	m.adding = false
	m.form.reset()
	m.resize()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	title, description, err := m.form.validate()
	if err == nil {
		var it model.Item
		it, err = m.store.Add(title, description)
		if err == nil {
			m.closeForm()
			m.cursorKey = it.ID
			m.syncList()
			m.flash = "added"
			return m, nil
		}
	}
	var verr *store.ValidationError
	if !errors.As(err, &verr) {
		m.log.WithError(err).Warn("add failed")
	}
	m.form.err = err.Error()
	return m, nil
}

func (m Model) selected() (view.Row, bool) {
	r, ok := m.list.SelectedItem().(listRow)
	if !ok {
		return view.Row{}, false
	}
	return r.Row, true
}

// syncList copies the rendered rows into the list and keeps the cursor on
// the same row key. When that row is gone the cursor stays at the same
// position.
func (m *Model) syncList() {
	pos := m.list.Index()
	m.list.SetItems(toListItems(m.r.list))

	n := len(m.r.list.Rows)
	if i := m.r.list.IndexOf(m.cursorKey); i >= 0 && m.cursorKey != "" {
		pos = i
	}
	if pos >= n {
		pos = n - 1
	}
	if pos < 0 {
		pos = 0
	}
	m.list.Select(pos)
	m.cursorKey = ""
	if row, ok := m.selected(); ok {
		m.cursorKey = row.Key
	}
}

// resize fits the list between the header and the help line.
func (m *Model) resize() {
	h := m.height - chromeLines
	if m.adding {
		h -= formLines
	}
	if h < minListHeight {
		h = minListHeight
	}
	m.list.SetSize(m.width-4, h)
}

// State exposes the store state the model is showing.
func (m Model) State() store.State { return m.r.state }

// Rows returns the rendered rows.
func (m Model) Rows() view.List { return m.r.list }

// FormValue returns the current input of a form field by accessible name.
func (m Model) FormValue(name string) string { return m.form.Value(name) }
