package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warning "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestInitWritesToFileSink(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev; slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "hushr.log")
	Init("info", "file:"+path, "json")
	Log.Info("session connected", "viewer", "0xabc")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"session connected"`)
	assert.Contains(t, string(b), `"viewer":"0xabc"`)
}
