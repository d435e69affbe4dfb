package cliconfig

import "slices"

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied, except for keys listed in
// source.SetFields.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Output != "" {
		target.Output = source.Output
		target.Sources["output"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	if source.BaseURL != "" {
		target.BaseURL = source.BaseURL
		target.Sources["baseUrl"] = sourceType
	}
	// An empty list cannot be told apart from an absent one without
	// SetFields, so it only clears the target when the file named it.
	if len(source.PermittedTags) > 0 || source.SetFields["permittedTags"] {
		target.PermittedTags = slices.Clone(source.PermittedTags)
		target.Sources["permittedTags"] = sourceType
	}
	if source.Ellipsize != 0 {
		target.Ellipsize = source.Ellipsize
		target.Sources["ellipsize"] = sourceType
	}
}
