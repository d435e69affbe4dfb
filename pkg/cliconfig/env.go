package cliconfig

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvOutput        = "WWUTILS_OUTPUT"
	EnvLogLevel      = "WWUTILS_LOG_LEVEL"
	EnvLogFormat     = "WWUTILS_LOG_FORMAT"
	EnvBaseURL       = "WWUTILS_BASE_URL"
	EnvPermittedTags = "WWUTILS_PERMITTED_TAGS"
	EnvEllipsize     = "WWUTILS_ELLIPSIZE"
)

// LoadEnvConfig applies WWUTILS_* environment variables to cfg.
// WWUTILS_PERMITTED_TAGS is a comma-separated list; set but empty clears it.
func LoadEnvConfig(cfg *CLIConfig) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	setString := func(env, key string, dst *string) {
		if v := os.Getenv(env); v != "" {
			*dst = v
			cfg.Sources[key] = SourceEnv
		}
	}
	setString(EnvOutput, "output", &cfg.Output)
	setString(EnvLogLevel, "logLevel", &cfg.LogLevel)
	setString(EnvLogFormat, "logFormat", &cfg.LogFormat)
	setString(EnvBaseURL, "baseUrl", &cfg.BaseURL)

	if v, ok := os.LookupEnv(EnvPermittedTags); ok {
		cfg.PermittedTags = splitList(v)
		cfg.Sources["permittedTags"] = SourceEnv
	}

	if v := os.Getenv(EnvEllipsize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Path: EnvEllipsize, Message: "not an integer: " + strconv.Quote(v)}
		}
		cfg.Ellipsize = n
		cfg.Sources["ellipsize"] = SourceEnv
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
