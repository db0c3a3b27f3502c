package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/sketchbook/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func useMemStore(t *testing.T) *memStore {
	t.Helper()
	m := &memStore{items: map[string][]byte{}}
	store = m
	t.Cleanup(func() { store = nil })
	return m
}

func TestSettingsWithoutStore(t *testing.T) {
	store = nil
	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, SaveSettings(&SavedSettings{ShowDebug: true}))
}

func TestRememberDemo(t *testing.T) {
	useMemStore(t)

	saved, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, saved)

	RememberDemo(cfg.DemoPlatformer)
	UpdateSavedSettings(func(s *SavedSettings) { s.ShowDebug = true })

	saved, err = LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, cfg.DemoPlatformer, saved.LastDemo)
	assert.True(t, saved.ShowDebug)
}

func TestLoadSettingsCorrupt(t *testing.T) {
	m := useMemStore(t)
	m.items[settingsKey] = []byte("{not json")

	saved, err := LoadSettings()
	assert.Error(t, err)
	assert.Nil(t, saved)
}

func TestSaveSettingsError(t *testing.T) {
	m := useMemStore(t)
	m.saveErr = errors.New("disk full")

	err := SaveSettings(&SavedSettings{})
	assert.ErrorIs(t, err, m.saveErr)
}

func TestDebugToggleRemembered(t *testing.T) {
	useMemStore(t)
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	assert.False(t, GetOrCreateSettings(e).ShowDebug)

	getOrCreateInput(e).Current[cfg.ActionToggleDebug] = true
	UpdateDebugToggle(e)
	assert.True(t, GetOrCreateSettings(e).ShowDebug)

	saved, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.ShowDebug)

	// A fresh world picks the saved preference up
	assert.True(t, GetOrCreateSettings(ecs.NewECS(donburi.NewWorld())).ShowDebug)
}
