package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := New("", "debug")
	require.NoError(t, err)
	logger.Info().Msg("dropped")
	assert.NoError(t, closeFn())
}

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closeFn, err := New(path, "info")
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Int("score", 300).Msg("locked")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"message":"locked"`)
	assert.Contains(t, out, `"score":300`)
	assert.Contains(t, out, `"app":"tritris"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
