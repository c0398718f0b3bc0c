package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_FetchItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Title 1","body":"Body 1","completed":false},{"id":"2","title":"Title 2","body":"Body 2","completed":true}]`))
	}))
	defer server.Close()

	src := NewHTTP(server.URL+"/todos", 0)
	items, err := src.FetchItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Body 2", items[1].Body)
	assert.True(t, items[1].Completed)
}

func TestHTTP_FetchItems_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewHTTP(server.URL, 0).FetchItems(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "request failed with status code 500", err.Error())
}

func TestHTTP_FetchItems_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	_, err := NewHTTP(server.URL, 0).FetchItems(context.Background())
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "decode", netErr.Op)
}

func TestHTTP_FetchItems_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTP(url, time.Second).FetchItems(context.Background())
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "GET", netErr.Op)
}

func TestHTTP_FetchItems_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewHTTP(server.URL, 0).FetchItems(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFile_FetchItems(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "todos.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"id":"x","title":"T","body":"B"}]`), 0o644))

	items, err := NewFile(p).FetchItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Body)
}

func TestFile_FetchItems_Missing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope.json")).FetchItems(context.Background())
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, err.Error(), "no such file")
}

func TestNew_PicksImplementation(t *testing.T) {
	s, err := New("https://example.com/todos", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &HTTP{}, s)

	s, err = New("file:///tmp/todos.json", 0)
	require.NoError(t, err)
	require.IsType(t, &File{}, s)
	assert.Equal(t, "/tmp/todos.json", s.(*File).Path)

	s, err = New("./todos.json", 0)
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	_, err = New("ftp://example.com/todos", 0)
	assert.Error(t, err)

	_, err = New("  ", 0)
	assert.Error(t, err)
}

func TestNetworkError_MessageIsVerbatim(t *testing.T) {
	err := &NetworkError{Op: "GET", URL: "u", Err: errors.New("Network error")}
	assert.Equal(t, "Network error", err.Error())
	assert.Equal(t, "GET u: failed", (&NetworkError{Op: "GET", URL: "u"}).Error())
}
