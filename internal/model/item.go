package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Item is the domain model for a todo entry.
type Item struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Completed bool   `json:"completed"`
}

// UnmarshalJSON accepts ids sent as strings or numbers, and the
// "isCompleted" spelling some list endpoints use.
func (it *Item) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID          json.RawMessage `json:"id"`
		Title       string          `json:"title"`
		Body        string          `json:"body"`
		Description string          `json:"description"`
		Completed   *bool           `json:"completed"`
		IsCompleted *bool           `json:"isCompleted"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	id, err := decodeID(raw.ID)
	if err != nil {
		return err
	}
	*it = Item{ID: id, Title: raw.Title, Body: raw.Body}
	if it.Body == "" {
		it.Body = raw.Description
	}
	switch {
	case raw.Completed != nil:
		it.Completed = *raw.Completed
	case raw.IsCompleted != nil:
		it.Completed = *raw.IsCompleted
	}
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("id: %w", err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("id: %w", err)
	}
	return n.String(), nil
}

// Stats counts completed and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Dedupe drops items whose id already appeared earlier in the list.
// The returned slice keeps the original order; dropped holds the ids removed.
func Dedupe(items []Item) (out []Item, dropped []string) {
	seen := make(map[string]struct{}, len(items))
	out = make([]Item, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			dropped = append(dropped, it.ID)
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out, dropped
}
