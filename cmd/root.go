package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/httplog/internal/app"
	"github.com/oshokin/httplog/internal/config"
	"github.com/oshokin/httplog/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "httplog [flags] {urls}",
		Short: "Send HTTP requests and trace every exchange.",
		Long: `httplog is a CLI tool that sends an HTTP request to each of the specified URLs
and traces the exchange through a logging interceptor.

The trace level controls how much is logged:
- none:    nothing
- basic:   request and response lines
- headers: lines and headers
- body:    lines, headers and plaintext bodies

Arguments ending in .txt are read as lists of URLs, one per line.`,
		Args:             cobra.MinimumNArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, urls []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			logger.SetLevel(appConfig.ParsedLogLevel)

			app.ExecuteRootCommand(cmd.Context(), appConfig, requestOptionsFromFlags(cmd.Flags()), urls)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	addRootFlags(rootCmd.Flags())
}

// addRootFlags registers the flags of the root command.
func addRootFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"method",
		"X",
		"",
		"HTTP method (default is GET, or POST when a body is given).")

	flags.StringArrayP(
		"header",
		"H",
		nil,
		"request header in 'Name: value' form, may be repeated.")

	flags.StringP(
		"data",
		"d",
		"",
		"request body.")

	flags.String(
		"data-file",
		"",
		"file whose content is sent as the request body.")

	flags.StringP(
		"level",
		"l",
		"",
		"trace level: none, basic, headers or body.")

	flags.BoolP(
		"debug",
		"D",
		false,
		"trace bodies unless a level is set explicitly.")

	flags.StringP(
		"output",
		"o",
		"",
		"directory to save response bodies (the path will be created if it doesn’t exist).")

	flags.String(
		"metrics-file",
		"",
		"write request metrics in the Prometheus text format to this file.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("level"); flag != nil && flag.Changed {
		cfg.TraceLevel, _ = flags.GetString("level")
	}

	if flag := flags.Lookup("debug"); flag != nil && flag.Changed {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("metrics-file"); flag != nil && flag.Changed {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}

	return config.ValidateConfig(cfg)
}

func requestOptionsFromFlags(flags *pflag.FlagSet) app.RequestOptions {
	var options app.RequestOptions

	options.Method, _ = flags.GetString("method")
	options.Headers, _ = flags.GetStringArray("header")
	options.Data, _ = flags.GetString("data")
	options.DataFile, _ = flags.GetString("data-file")

	return options
}
