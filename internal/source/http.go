package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/remotetodo/internal/model"
)

// maxBody caps how much of a list response is read.
const maxBody = 8 << 20

// HTTP fetches items with a GET against a list endpoint.
type HTTP struct {
	URL    string
	Client *http.Client
	Logger *logrus.Logger
}

// NewHTTP returns an HTTP source. A zero timeout means the request is only
// bounded by ctx.
func NewHTTP(endpoint string, timeout time.Duration) *HTTP {
	return &HTTP{
		URL:    endpoint,
		Client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTP) FetchItems(ctx context.Context) ([]model.Item, error) {
	log := h.entry()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, &NetworkError{Op: "GET", URL: h.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		log.WithError(err).Warn("fetch failed")
		return nil, &NetworkError{Op: "GET", URL: h.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("status", resp.StatusCode).Warn("unexpected status")
		return nil, &NetworkError{
			Op:  "GET",
			URL: h.URL,
			Err: fmt.Errorf("request failed with status code %d", resp.StatusCode),
		}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &NetworkError{Op: "read", URL: h.URL, Err: err}
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, &NetworkError{Op: "decode", URL: h.URL, Err: fmt.Errorf("json unmarshal: %w", err)}
	}
	log.WithFields(logrus.Fields{
		"count":    len(items),
		"duration": time.Since(start).String(),
	}).Debug("fetched items")
	return items, nil
}

func (h *HTTP) entry() *logrus.Entry {
	l := h.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	return l.WithFields(logrus.Fields{"component": "http_source", "url": h.URL})
}
