package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	closer, err := Setup(path, "debug")
	require.NoError(t, err)

	log.Info().Str("component", "test").Msg("hello from the dashboard")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the dashboard")
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	closer, err := Setup(path, "warn")
	require.NoError(t, err)

	log.Debug().Msg("too quiet to hear")
	log.Warn().Msg("loud enough")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "too quiet to hear")
	assert.Contains(t, string(data), "loud enough")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := Setup(filepath.Join(t.TempDir(), "test.log"), "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
