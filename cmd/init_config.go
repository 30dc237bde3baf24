package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/httplog/internal/config"
	"github.com/oshokin/httplog/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a configuration file with default values",
	Long: `Writes the default configuration to the file given by --config,
or to .httplog.yaml in the current directory. An existing file is never overwritten.`,
	Args:             cobra.NoArgs,
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		filename := configFilenameFromFlag
		if filename == "" {
			filename = config.DefaultConfigFilename
		}

		if err := config.WriteDefaultConfig(filename); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to write configuration: %v", err)
		}

		logger.Infof(cmd.Context(), "Configuration written to '%s'", filename)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(initConfigCmd)
}
