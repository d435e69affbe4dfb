// Package cliconfig provides configuration types and loading for the wwutils CLI.
package cliconfig

// CLIConfig represents the complete configuration for the wwutils CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Local config file (.wwutilsrc.yaml in current directory)
// 4. Global config file (~/.config/wwutils/config.yaml)
// 5. Default values (lowest priority)
type CLIConfig struct {
	// Output settings
	Output string `yaml:"output" json:"output"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// BaseURL is the page location the hash commands run against.
	BaseURL string `yaml:"baseUrl" json:"baseUrl"`

	// HTML settings
	PermittedTags []string `yaml:"permittedTags" json:"permittedTags"`

	// Text settings
	Ellipsize int `yaml:"ellipsize" json:"ellipsize"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the keys present in a loaded file, so that explicit
	// zero values such as an empty permittedTags list still merge.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)
