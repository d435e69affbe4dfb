package cliconfig

import "github.com/winterwell/wwutils/pkg/util"

// DefaultOutput is the default output format.
const DefaultOutput = OutputText

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log format.
const DefaultLogFormat = "text"

// DefaultBaseURL is the location used when no page URL is configured.
const DefaultBaseURL = "http://localhost/"

// DefaultEllipsize is the default maximum text length.
const DefaultEllipsize = util.DefaultEllipsizeLength

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Output:    DefaultOutput,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		BaseURL:   DefaultBaseURL,
		Ellipsize: DefaultEllipsize,
		Sources:   make(map[string]string),
	}

	// Mark all as default source
	for _, key := range []string{"output", "logLevel", "logFormat", "baseUrl", "permittedTags", "ellipsize"} {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}
