package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/winterwell/wwutils/pkg/cli/internal/output"
	"github.com/winterwell/wwutils/pkg/cliconfig"
)

// ConfigOutput is the effective configuration with the origin of each value.
type ConfigOutput struct {
	Config  *cliconfig.CLIConfig `json:"config" yaml:"config"`
	Sources map[string]string    `json:"sources" yaml:"sources"`
	Files   []string             `json:"files" yaml:"files"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := ConfigOutput{Config: cfg, Sources: cfg.Sources, Files: []string{}}
		if globalPath, err := cliconfig.FindGlobalConfig(); err == nil && globalPath != "" {
			out.Files = append(out.Files, globalPath)
		}
		if localPath, err := cliconfig.FindLocalConfig(); err == nil && localPath != "" {
			out.Files = append(out.Files, localPath)
		}

		return printResult(cmd, out, func(w io.Writer) error {
			fmt.Fprintln(w, "Effective Configuration:")
			fmt.Fprintln(w)

			tw := output.Table(w)
			printConfigValue(tw, "output", cfg.Output, cfg.Sources["output"])
			printConfigValue(tw, "logLevel", cfg.LogLevel, cfg.Sources["logLevel"])
			printConfigValue(tw, "logFormat", cfg.LogFormat, cfg.Sources["logFormat"])
			printConfigValue(tw, "baseUrl", cfg.BaseURL, cfg.Sources["baseUrl"])
			printConfigValue(tw, "permittedTags", cfg.PermittedTags, cfg.Sources["permittedTags"])
			printConfigValue(tw, "ellipsize", cfg.Ellipsize, cfg.Sources["ellipsize"])
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(out.Files) > 0 {
				fmt.Fprintln(w)
				fmt.Fprintln(w, "Sources loaded:")
				for _, path := range out.Files {
					fmt.Fprintf(w, "  %s\n", path)
				}
			}
			return nil
		})
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the files searched for configuration, in precedence order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := append(cliconfig.GetLocalConfigSearchPaths(), cliconfig.GetGlobalConfigSearchPaths()...)
		return printResult(cmd, paths, func(w io.Writer) error {
			for _, p := range paths {
				fmt.Fprintln(w, p)
			}
			return nil
		})
	},
}

// printConfigValue prints a config value with source annotation.
func printConfigValue(w io.Writer, name string, value any, source string) {
	if source == "" {
		source = cliconfig.SourceDefault
	}
	fmt.Fprintf(w, "  %s:\t%v\t%s\n", name, value, formatSource(source))
}

// formatSource formats a source type for display.
func formatSource(source string) string {
	switch source {
	case cliconfig.SourceDefault:
		return "(default)"
	case cliconfig.SourceEnv:
		return "(env)"
	case cliconfig.SourceGlobal:
		return "(global config)"
	case cliconfig.SourceLocal:
		return "(local config)"
	case cliconfig.SourceFlag:
		return "(flag)"
	default:
		return ""
	}
}

func init() {
	configCmd.AddCommand(configPathsCmd)
	rootCmd.AddCommand(configCmd)
}
