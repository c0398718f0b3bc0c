// Package store owns the session's todo list and its load lifecycle.
package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/source"
)

// Ticket identifies one load. Results carrying an older ticket are dropped.
type Ticket uint64

// Store holds the authoritative item list for one session.
// It is not safe for concurrent use; drive it from a single goroutine.
type Store struct {
	kind    Kind
	items   []model.Item
	message string

	ticket Ticket
	closed bool

	listeners map[int]func(State)
	nextSub   int

	newID  func() string
	logger *logrus.Entry
}

type Option func(*Store)

// WithIDGenerator replaces the uuid generator used for new items.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func WithLogger(l *logrus.Logger) Option {
	return func(s *Store) { s.logger = l.WithField("component", "store") }
}

func New(opts ...Option) *Store {
	s := &Store{
		kind:      Idle,
		items:     []model.Item{},
		listeners: map[int]func(State){},
		newID:     func() string { return uuid.NewString() },
		logger:    logrus.StandardLogger().WithField("component", "store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state. Items in the result are a copy.
func (s *Store) State() State {
	st := State{Kind: s.kind}
	switch s.kind {
	case Ready:
		st.Items = s.Items()
	case Failed:
		st.Message = s.message
	}
	return st
}

// Items returns a copy of the current list.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Subscribe registers fn to be called after every change. The returned
// func removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

func (s *Store) notify() {
	if s.closed {
		return
	}
	st := s.State()
	for _, fn := range s.listeners {
		fn(st)
	}
}

// BeginLoad enters Loading and returns the ticket that FinishLoad expects.
func (s *Store) BeginLoad() (Ticket, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.kind == Loading {
		return 0, ErrLoadInFlight
	}
	s.ticket++
	s.kind = Loading
	s.message = ""
	s.logger.WithField("ticket", s.ticket).Debug("load started")
	s.notify()
	return s.ticket, nil
}

// FinishLoad applies a fetch result. It reports false when the result was
// discarded because the store is closed or the ticket is stale.
func (s *Store) FinishLoad(t Ticket, items []model.Item, err error) bool {
	if s.closed || s.kind != Loading || t != s.ticket {
		s.logger.WithField("ticket", t).Debug("discarding load result")
		return false
	}
	if err != nil {
		s.kind = Failed
		s.message = FailureMessage(err)
		s.logger.WithError(err).Warn("load failed")
		s.notify()
		return true
	}
	items = s.fillMissingIDs(items)
	clean, dropped := model.Dedupe(items)
	if len(dropped) > 0 {
		s.logger.WithField("ids", dropped).Warn("dropped duplicate ids")
	}
	s.items = clean
	s.kind = Ready
	s.logger.WithField("count", len(clean)).Info("items loaded")
	s.notify()
	return true
}

// Load fetches from src and applies the result before returning.
func (s *Store) Load(ctx context.Context, src source.Source) error {
	t, err := s.BeginLoad()
	if err != nil {
		return err
	}
	items, err := src.FetchItems(ctx)
	s.FinishLoad(t, items, err)
	return err
}

// FailureMessage is the user-facing text for a failed load.
func FailureMessage(err error) string {
	return "something went wrong: " + strings.ToLower(err.Error())
}

// Add appends a new, not completed item. An empty title is rejected.
func (s *Store) Add(title, description string) (model.Item, error) {
	if s.closed {
		return model.Item{}, ErrClosed
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Item{}, Required("title")
	}
	if s.kind != Ready {
		return model.Item{}, ErrNotReady
	}
	it := model.Item{
		ID:    s.uniqueID(),
		Title: title,
		Body:  strings.TrimSpace(description),
	}
	s.items = append(s.items, it)
	s.notify()
	return it, nil
}

// fillMissingIDs gives entries that arrived without an id a client id, so
// they are kept and stay addressable. The input slice is not modified.
func (s *Store) fillMissingIDs(items []model.Item) []model.Item {
	missing := 0
	taken := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.ID == "" {
			missing++
		} else {
			taken[it.ID] = struct{}{}
		}
	}
	if missing == 0 {
		return items
	}
	s.logger.WithField("count", missing).Warn("assigned client ids to entries without id")
	out := make([]model.Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID != "" {
			continue
		}
		for {
			id := s.newID()
			if _, ok := taken[id]; !ok && id != "" {
				taken[id] = struct{}{}
				out[i].ID = id
				break
			}
		}
	}
	return out
}

func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if s.index(id) < 0 {
			return id
		}
	}
}

// ToggleCompleted flips the completion flag of the item with id.
// Unknown ids are ignored and reported as false.
func (s *Store) ToggleCompleted(id string) bool {
	i := s.mutableIndex(id)
	if i < 0 {
		return false
	}
	s.items[i].Completed = !s.items[i].Completed
	s.notify()
	return true
}

// Remove deletes the item with id. Unknown ids are ignored and reported
// as false.
func (s *Store) Remove(id string) bool {
	i := s.mutableIndex(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.notify()
	return true
}

func (s *Store) mutableIndex(id string) int {
	if s.closed || s.kind != Ready {
		return -1
	}
	return s.index(id)
}

func (s *Store) index(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Close tears the store down. Pending load results are dropped and no
// listener fires afterwards.
func (s *Store) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.listeners = map[int]func(State){}
}

func (s *Store) Closed() bool { return s.closed }
