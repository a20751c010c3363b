package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/omarchive/internal/catalogue"
	"github.com/vvka-141/omarchive/internal/config"
	"github.com/vvka-141/omarchive/internal/logging"
	"github.com/vvka-141/omarchive/internal/pipeline"
)

var validateFlags sourceFlags

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalogue without building",
	Long: `Validate loads the definition catalogue and reports every problem found:
missing names, malformed GUIDs, GUIDs claimed twice, and references to
definitions that do not exist. No archive or registry file is written.

Examples:
  # Validate the embedded catalogue
  omarchive validate

  # Validate a catalogue directory
  omarchive validate --catalogue ./catalogue`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	addSourceFlags(validateCmd, &validateFlags)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	cfg, err := resolveBuildConfig(validateFlags, config.Flags{Verbose: verbose})
	if err != nil {
		return err
	}

	cat, err := pipeline.New(logging.NewConsoleLogger(verbose)).LoadCatalogue(cfg)
	if err != nil {
		return err
	}

	result := catalogue.Validate(cat)
	newRenderer(cmd.OutOrStdout()).Validation(cat, result)
	return result.Err()
}
