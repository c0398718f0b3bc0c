// Package source provides the collaborators that fetch the remote todo list.
package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/idilsaglam/remotetodo/internal/model"
)

// Source fetches the full item list for a session.
type Source interface {
	FetchItems(ctx context.Context) ([]model.Item, error)
}

// Func adapts a plain function to Source.
type Func func(ctx context.Context) ([]model.Item, error)

func (f Func) FetchItems(ctx context.Context) ([]model.Item, error) { return f(ctx) }

// NetworkError reports a failed fetch. Error returns the underlying message
// unchanged so it can be shown to the user as is.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.URL + ": failed"
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// New picks a Source for endpoint: http(s) URLs are fetched over HTTP,
// file:// URLs and bare paths are read from disk.
func New(endpoint string, timeout time.Duration) (Source, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("empty endpoint")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return NewHTTP(endpoint, timeout), nil
	case "file":
		return NewFile(u.Path), nil
	case "":
		return NewFile(endpoint), nil
	}
	return nil, fmt.Errorf("unsupported endpoint scheme: %q", u.Scheme)
}
