package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termviz/internal/events"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewService()

	want := DefaultConfig()
	want.SelectionMode = "single"
	want.Series[0].Name = "load"

	require.NoError(t, svc.SaveToPath(want, path))

	got, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadFromPathFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	raw := []byte("version = 1\n\n[[series]]\nname = \"cpu\"\n")
	require.NoError(t, os.WriteFile(path, raw, 0644))

	got, err := NewService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "multiple", got.SelectionMode)
	assert.Equal(t, 6, got.UI.LogLines)
	require.Len(t, got.Series, 1)
	assert.Equal(t, 60, got.Series[0].Points)
	assert.Equal(t, 1.0, got.Series[0].Step)
}

func TestLoadMissingFileReturnsDefaultsAndPublishes(t *testing.T) {
	bus := events.NewBus()
	var got []LoadedEvent
	bus.Subscribe(EventLoaded, func(payload any) {
		got = append(got, payload.(LoadedEvent))
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := &service{bus: bus, filePath: path}

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	require.Len(t, got, 1)
	assert.Equal(t, cfg, got[0].Config)
	assert.Equal(t, path, got[0].Path)
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := DefaultConfig()
	want.UI.ShowLegend = false
	require.NoError(t, NewService().SaveToPath(want, path))

	svc := &service{filePath: path}
	got, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSavePublishesSavedEvent(t *testing.T) {
	bus := events.NewBus()
	var got []SavedEvent
	bus.Subscribe(EventSaved, func(payload any) {
		got = append(got, payload.(SavedEvent))
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := &service{bus: bus, filePath: path}

	require.NoError(t, svc.Save(DefaultConfig()))

	require.Len(t, got, 1)
	assert.Equal(t, path, got[0].Path)

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
