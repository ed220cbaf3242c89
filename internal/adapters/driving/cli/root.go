// Package cli provides the eq command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
	"github.com/mikeevmm/eq/internal/core/ports/driving"
	"github.com/mikeevmm/eq/internal/logger"
)

// Environment variables.
const (
	// EnvTempDir overrides the parent of the working directory.
	EnvTempDir = "EQ_TMPDIR"
)

// RunConfig holds the collaborators the root command wires together.
type RunConfig struct {
	Settings driving.SettingsService
	Locator  driving.ToolLocator

	// Getenv reads environment overrides.
	Getenv func(key string) string

	// NewWorkspace creates the working directory under parent.
	NewWorkspace func(parent string) (driven.Workspace, error)

	// NewLoop builds the loop over a resolved tool set.
	NewLoop func(tools *domain.ToolSet, ws driven.Workspace) (driving.EditLoop, error)
}

// runConfig holds the current configuration.
var runConfig *RunConfig

// SetRunConfig sets the configuration for the root command.
func SetRunConfig(config *RunConfig) {
	runConfig = config
}

var rootCmd = &cobra.Command{
	Use:   "eq",
	Short: "Render LaTeX equations into the clipboard",
	Long: `eq opens your editor on a LaTeX template. Every time you save and quit,
the equation is compiled, converted to a PNG and copied to your clipboard,
and the editor opens again. Quit without changing anything to exit.

Requires latexmk, ImageMagick (magick or convert) and a clipboard tool
(xclip or wl-copy on Linux, nircmd on Windows).

Environment:
  EQ_TMPDIR       parent directory for the temporary working directory
  EQ_EDITOR       preferred editor, checked before editor, $VISUAL and $EDITOR`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEq,
}

func init() {
	rootCmd.Flags().Int("density", domain.DefaultDensity, "PDF to PNG conversion image density")
	rootCmd.Flags().String("editor", "", "editor command to use instead of auto-detection")
	rootCmd.Flags().BoolP("verbose", "v", false, "print debug output")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runEq(cmd *cobra.Command, _ []string) error {
	if runConfig == nil {
		return errors.New("eq is not configured")
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger.SetVerbose(settings.Verbose)

	tools, err := runConfig.Locator.Locate(settings)
	if err != nil {
		reportMissingTools(err)
		return err
	}

	ws, err := runConfig.NewWorkspace(settings.TempDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Close(); err != nil {
			logger.Warn("%v", err)
		}
	}()
	logger.Debug("working directory: %s", ws.Dir())

	loop, err := runConfig.NewLoop(tools, ws)
	if err != nil {
		return err
	}

	return loop.Run(cmd.Context())
}

// resolveSettings layers flags over the environment over the config file.
func resolveSettings(cmd *cobra.Command) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if runConfig.Settings != nil {
		s, err := runConfig.Settings.Get()
		if err != nil {
			return settings, fmt.Errorf("load settings: %w", err)
		}
		settings = s
	}

	if runConfig.Getenv != nil {
		if dir := runConfig.Getenv(EnvTempDir); dir != "" {
			settings.TempDir = dir
		}
	}

	flags := cmd.Flags()
	if flags.Changed("density") {
		density, err := flags.GetInt("density")
		if err != nil {
			return settings, err
		}
		if density <= 0 {
			return settings, fmt.Errorf("%w: --density must be a positive integer, got %d",
				domain.ErrInvalidInput, density)
		}
		settings.Density = density
	}
	if flags.Changed("editor") {
		editor, err := flags.GetString("editor")
		if err != nil {
			return settings, err
		}
		settings.Editor = editor
	}
	if flags.Changed("verbose") {
		verbose, err := flags.GetBool("verbose")
		if err != nil {
			return settings, err
		}
		settings.Verbose = verbose
	}

	return settings, nil
}

func reportMissingTools(err error) {
	var missing *domain.MissingToolsError
	if !errors.As(err, &missing) {
		return
	}
	for _, c := range missing.Missing {
		logger.Error("%s", c.Hint())
	}
}
