package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TODO_ENDPOINT", "TODO_TIMEOUT", "TODO_THEME", "TODO_LOG_FILE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_ENDPOINT", "https://example.com/todos")
	t.Setenv("TODO_TIMEOUT", "5s")
	t.Setenv("TODO_THEME", "neon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/todos", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "neon", cfg.Theme)
}

func TestLoad_FromDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("TODO_ENDPOINT")
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("TODO_ENDPOINT=./fixtures/todos.json\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "./fixtures/todos.json", cfg.Endpoint)
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TODO_TIMEOUT")
}

func TestLoad_DoesNotValidate(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_TIMEOUT", "-1s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, -time.Second, cfg.Timeout)
	assert.Error(t, cfg.Validate())

	cfg.Timeout = 5 * time.Second
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingDotEnvIsSilent(t *testing.T) {
	clearEnv(t)
	hook := test.NewGlobal()
	defer hook.Reset()

	_, err := Load()
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestLoad_UnreadableDotEnvIsLogged(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Mkdir(".env", 0o755))
	hook := test.NewGlobal()
	defer hook.Reset()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, ".env")
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{Endpoint: " "}).Validate())
	assert.Error(t, (&Config{Endpoint: "x", Timeout: -time.Second}).Validate())
	assert.NoError(t, (&Config{Endpoint: "x"}).Validate())
}
