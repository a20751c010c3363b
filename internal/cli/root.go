package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "omarchive",
	Short: "Open metadata content archive builder",
	Long: `omarchive turns a catalogue of definition records into one open metadata
archive: valid-value hierarchies, connector types, templates, integration
connectors, governance engines, request types and governance action processes,
each with a GUID that stays the same from one release to the next.

Running omarchive with no arguments performs one build and writes one archive
file. GUIDs are recorded in the identifier registry file so that later builds
reuse them.

Configuration is read from omarchive.yaml, then the process environment
(OMARCHIVE_*), then --env-file files, then flags; later sources win.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - GUID conflict
  21 - Dangling reference
  22 - Duplicate valid-value hierarchy node
  23 - Identifier registry could not be loaded or saved
  24 - Invalid catalogue
  25 - Processor ordering violation`,
	Args:         cobra.NoArgs,
	RunE:         runBuild,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
