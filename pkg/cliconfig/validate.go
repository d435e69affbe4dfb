package cliconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks values that may have come from the environment or flags,
// which bypass the file schema.
func (c *CLIConfig) Validate() error {
	var problems []error

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		problems = append(problems, fmt.Errorf("output %q must be one of text, json, yaml", c.Output))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Errorf("logLevel %q must be one of debug, info, warn, error", c.LogLevel))
	}

	if !strings.EqualFold(c.LogFormat, "text") && !strings.EqualFold(c.LogFormat, "json") {
		problems = append(problems, fmt.Errorf("logFormat %q must be text or json", c.LogFormat))
	}

	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" {
		problems = append(problems, fmt.Errorf("baseUrl %q must be an absolute URL", c.BaseURL))
	}

	if c.Ellipsize < 1 {
		problems = append(problems, fmt.Errorf("ellipsize %d must be at least 1", c.Ellipsize))
	}

	for _, tag := range c.PermittedTags {
		if !isTagName(tag) {
			problems = append(problems, fmt.Errorf("permittedTags: %q is not a tag name", tag))
		}
	}

	return errors.Join(problems...)
}

func isTagName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
