package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/sketchbook/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	LastDemo   cfg.DemoID `json:"lastDemo"`
	ShowDebug  bool       `json:"showDebug"`
	Fullscreen bool       `json:"fullscreen"`
}

// settingsStore is the subset of gdata.Manager the settings use.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sketchbook",
	})
	if err != nil {
		log.Warn("persistence unavailable, settings will not be saved", "err", err)
		return fmt.Errorf("open settings storage: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("could not serialize settings", "err", err)
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// UpdateSavedSettings loads the current settings, applies fn and writes
// them back. Missing settings start from the zero value.
func UpdateSavedSettings(fn func(s *SavedSettings)) {
	saved, _ := LoadSettings()
	if saved == nil {
		saved = &SavedSettings{}
	}
	fn(saved)
	_ = SaveSettings(saved)
}

// RememberDemo records the demo that was launched last.
func RememberDemo(id cfg.DemoID) {
	UpdateSavedSettings(func(s *SavedSettings) {
		s.LastDemo = id
	})
}
