package services

import (
	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
	"github.com/mikeevmm/eq/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDensity = "render.density"
	keyEditor  = "tools.editor"
	keyTempDir = "workspace.temp_dir"
	keyVerbose = "log.verbose"
)

// SettingsService reads user settings from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
// A nil config store yields the defaults.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the current settings.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings, nil
	}

	// Non-positive densities are ignored so a bad file can't disable rendering
	if density := s.configStore.GetInt(keyDensity); density > 0 {
		settings.Density = density
	}
	settings.Editor = s.configStore.GetString(keyEditor)
	settings.TempDir = s.configStore.GetString(keyTempDir)
	settings.Verbose = s.configStore.GetBool(keyVerbose)

	return settings, nil
}
