package driving

import (
	"context"

	"github.com/mikeevmm/eq/internal/core/domain"
)

// EditLoop runs the edit/compile/convert/copy cycle.
type EditLoop interface {
	// Run loops until an editor session leaves the document unchanged.
	// Stage failures are reported and recovered from; only setup faults
	// and context cancellation are returned.
	Run(ctx context.Context) error

	// State returns the current loop state.
	State() domain.LoopState
}

// ToolLocator resolves the external programs eq needs.
type ToolLocator interface {
	// Locate resolves every capability. It returns a *domain.MissingToolsError
	// naming each capability that could not be found.
	Locate(settings domain.Settings) (*domain.ToolSet, error)
}

// SettingsService merges configuration sources into domain.Settings.
type SettingsService interface {
	// Get returns the settings from the config store over the defaults.
	Get() (domain.Settings, error)
}
