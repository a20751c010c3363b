package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/omarchive/internal/catalogue"
	"github.com/vvka-141/omarchive/internal/config"
	"github.com/vvka-141/omarchive/internal/logging"
	"github.com/vvka-141/omarchive/internal/pipeline"
)

type buildFlagValues struct {
	sourceFlags
	output   string
	registry string
}

var buildFlags buildFlagValues

func init() {
	addSourceFlags(rootCmd, &buildFlags.sourceFlags)
	rootCmd.Flags().StringVarP(&buildFlags.output, "output", "o", "",
		"Archive file to write (default: CoreContentPack.omarchive)")
	rootCmd.Flags().StringVar(&buildFlags.registry, "registry", "",
		"Identifier registry file (default: CoreContentPack.guidmap.yaml)")

	_ = rootCmd.MarkFlagFilename("registry", "yaml", "yml")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := resolveBuildConfig(buildFlags.sourceFlags, config.Flags{
		Output:   buildFlags.output,
		Registry: buildFlags.registry,
		Verbose:  getVerboseFlag(cmd),
	})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(cfg.Verbose)
	loader := pipeline.New(logger)
	cat, err := loader.LoadCatalogue(cfg)
	if err != nil {
		return err
	}
	if result := catalogue.Validate(cat); result.HasErrors() {
		newRenderer(cmd.ErrOrStderr()).Validation(cat, result)
		return result.Err()
	}

	result, err := pipeline.New(logger, pipeline.WithCatalogue(cat)).Run(cfg)
	if err != nil {
		return err
	}

	newRenderer(cmd.OutOrStdout()).BuildSummary(result)
	return nil
}
