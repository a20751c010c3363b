package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/omarchive/internal/config"
	"github.com/vvka-141/omarchive/internal/ui"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// sourceFlags holds the configuration flags shared by build and validate.
type sourceFlags struct {
	config    string
	envFiles  []string
	catalogue string
}

func addSourceFlags(cmd *cobra.Command, flags *sourceFlags) {
	cmd.Flags().StringVar(&flags.config, "config", "",
		"Path to the build configuration (default: ./"+config.ConfigFileName+" when present)")
	cmd.Flags().StringArrayVar(&flags.envFiles, "env-file", nil,
		"Load OMARCHIVE_* overrides from a .env file (repeatable, later files win)")
	cmd.Flags().StringVar(&flags.catalogue, "catalogue", "",
		"Catalogue directory (default: the catalogue embedded in the binary)")

	_ = cmd.MarkFlagFilename("config", "yaml", "yml")
	_ = cmd.MarkFlagFilename("env-file", "env")
	_ = cmd.MarkFlagDirname("catalogue")
}

// resolveBuildConfig merges omarchive.yaml, the environment, env files and flags.
func resolveBuildConfig(src sourceFlags, overrides config.Flags) (omarchive.BuildConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := loadProjectConfig(src.config)
	if err != nil {
		return omarchive.BuildConfig{}, err
	}

	envFile, err := config.ReadEnvFiles(src.envFiles)
	if err != nil {
		return omarchive.BuildConfig{}, fmt.Errorf("%w: %w", err, omarchive.ErrInvalidConfig)
	}

	overrides.Catalogue = src.catalogue
	return config.Resolve(config.Sources{
		Project:   projectCfg,
		LookupEnv: os.LookupEnv,
		EnvFile:   envFile,
		Flags:     overrides,
	})
}

// loadProjectConfig loads the build configuration.
// Returns nil config if ./omarchive.yaml does not exist (not an error); a
// file named with --config must exist.
func loadProjectConfig(path string) (*config.ProjectConfig, error) {
	if path == "" {
		projectCfg, err := config.Load(".")
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, nil // Config file not found is not an error
			}
			return nil, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, err, omarchive.ErrInvalidConfig)
		}
		return projectCfg, nil
	}

	projectCfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w: %w", path, err, omarchive.ErrInvalidConfig)
	}
	return projectCfg, nil
}

// newRenderer styles output only when it goes to a terminal.
func newRenderer(out io.Writer) *ui.Renderer {
	mode := ui.ModePlain
	if f, ok := out.(*os.File); ok {
		mode = ui.DetectMode(f)
	}
	return ui.NewRenderer(out, mode)
}
