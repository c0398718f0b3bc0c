package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todo.log")
	l, closeFn, err := New(p, "debug")
	require.NoError(t, err)

	l.WithField("component", "test").Debug("hello")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(p)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(b))), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "ts")
}

func TestNew_NoPathDiscards(t *testing.T) {
	l, closeFn, err := New("", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.NoError(t, closeFn())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New("", "loud")
	assert.Error(t, err)
}
