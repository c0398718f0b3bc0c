package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/idilsaglam/remotetodo/internal/model"
)

// File reads the item list from a JSON array on disk. It stands in for the
// remote endpoint in demos and fixtures; nothing is ever written back.
type File struct {
	Path string
}

func NewFile(path string) *File { return &File{Path: path} }

func (f *File) FetchItems(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, &NetworkError{Op: "read", URL: f.Path, Err: err}
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NetworkError{Op: "read", URL: f.Path, Err: fmt.Errorf("no such file: %s", f.Path)}
		}
		return nil, &NetworkError{Op: "read", URL: f.Path, Err: fmt.Errorf("read file: %w", err)}
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, &NetworkError{Op: "decode", URL: f.Path, Err: fmt.Errorf("json unmarshal: %w", err)}
	}
	return items, nil
}
