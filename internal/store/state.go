package store

import "github.com/idilsaglam/remotetodo/internal/model"

// Kind names the phase of a Store's load lifecycle.
type Kind int

const (
	Idle Kind = iota
	Loading
	Ready
	Failed
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "error"
	}
	return "unknown"
}

// State is a snapshot of the store. Items is only set when Kind is Ready
// and Message only when Kind is Failed.
type State struct {
	Kind    Kind
	Items   []model.Item
	Message string
}

func (s State) Loading() bool { return s.Kind == Loading }
