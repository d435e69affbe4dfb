package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/winterwell/wwutils/pkg/cli/internal/output"
	"github.com/winterwell/wwutils/pkg/cliconfig"
	"github.com/winterwell/wwutils/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	outputFormat string
	selectPath   string
	logLevel     string
	baseURL      string

	// cfg and log are set before any subcommand runs.
	cfg *cliconfig.CLIConfig
	log = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wwutils",
	Short: "wwutils encodes and decodes query strings, hash routes and XIds",
	Long: `wwutils is a toolbox for the small codecs web apps keep reimplementing:
URL query strings, hash-fragment routes, "id@service" XIds, HTML escaping
and a handful of text helpers.

Configuration can be provided via flags, WWUTILS_* environment variables,
a local .wwutilsrc.yaml or a global config file at
~/.config/wwutils/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // We handle errors in Main()
	PersistentPreRunE: setup,
}

// Execute runs the root command and exits with its status.
// This is called by main.main().
func Execute() {
	os.Exit(Main())
}

// Main runs the root command and returns the process exit code.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&outputFormat, "output", "o", cliconfig.DefaultOutput, "Output format: text, json or yaml")
	pf.StringVar(&selectPath, "select", "", "JSONPath applied to the result before output, e.g. $.params.tab")
	pf.StringVar(&logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level: debug, info, warn or error")
	pf.StringVar(&baseURL, "base-url", cliconfig.DefaultBaseURL, "Page URL the hash commands run against")
}

// setup loads layered configuration, applies flags and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := cliconfig.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	applyFlag := func(name, key string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
			loaded.Sources[key] = cliconfig.SourceFlag
		}
	}
	applyFlag("output", "output", &loaded.Output, outputFormat)
	applyFlag("log-level", "logLevel", &loaded.LogLevel, logLevel)
	applyFlag("base-url", "baseUrl", &loaded.BaseURL, baseURL)

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	log = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	})
	log.Debug("configuration loaded",
		slog.String("command", cmd.CommandPath()),
		slog.String("output", cfg.Output),
		slog.String("baseUrl", cfg.BaseURL),
	)
	return nil
}

// printer returns a Printer for the command's output stream.
func printer(cmd *cobra.Command) *output.Printer {
	return &output.Printer{
		Out:    cmd.OutOrStdout(),
		Format: cfg.Output,
		Select: selectPath,
	}
}
