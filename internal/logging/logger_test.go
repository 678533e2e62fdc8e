package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize_SilentWithoutLevel(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	require.NoError(t, Initialize("", ""))
	assert.Empty(t, Path())
	assert.NotPanics(t, func() { Info("ignored") })
}

func TestInitialize_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rizumu.log")

	require.NoError(t, Initialize("debug", path))
	t.Cleanup(func() { set(zap.NewNop(), "") })

	Warn("fetch failed", zap.String("category", "Playlists"))
	Sync()

	assert.Equal(t, path, Path())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetch failed")
	assert.Contains(t, string(data), "Playlists")
}

func TestInitialize_LevelFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(LogLevelEnvVar, "error")

	require.NoError(t, Initialize("", path))
	t.Cleanup(func() { set(zap.NewNop(), "") })

	Info("too quiet")
	Error("loud")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "too quiet"))
	assert.Contains(t, string(data), "loud")
}

func TestInitialize_UnknownLevel(t *testing.T) {
	err := Initialize("chatty", filepath.Join(t.TempDir(), "x.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chatty")
}
