package domain

// Settings are the user-tunable options, merged from flags,
// environment and the config file.
type Settings struct {
	// Density is the rasterization density in DPI.
	Density int

	// Editor is the preferred editor command. Empty means auto-detect.
	Editor string

	// TempDir is the parent of the working directory. Empty means the OS default.
	TempDir string

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Density: DefaultDensity,
	}
}
