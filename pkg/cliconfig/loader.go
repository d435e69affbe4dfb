package cliconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "wwutils"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".wwutilsrc.yaml", ".wwutilsrc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

//go:embed schema.json
var schemaJSON []byte

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return compiler.Compile("schema.json")
})

// FindLocalConfig searches for .wwutilsrc.yaml or .wwutilsrc.yml in the current directory.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findIn(cwd, LocalConfigFileNames), nil
}

// GetLocalConfigSearchPaths returns the paths that will be searched for local config.
func GetLocalConfigSearchPaths() []string {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	return joinAll(cwd, LocalConfigFileNames)
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir means no global config
		return "", nil
	}
	return findIn(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames), nil
}

// GetGlobalConfigSearchPaths returns the paths that will be searched for global config.
func GetGlobalConfigSearchPaths() []string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return joinAll(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames)
}

func findIn(dir string, names []string) string {
	for _, path := range joinAll(dir, names) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func joinAll(dir string, names []string) []string {
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}

// LoadConfigFile loads a CLIConfig from a YAML file. The document is checked
// against the config schema before it is decoded.
func LoadConfigFile(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(path, data)
}

// ParseConfig decodes and validates YAML config data. path is only used in
// error messages.
func ParseConfig(path string, data []byte) (*CLIConfig, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	if err := validateDocument(raw); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}

	cfg.Sources = make(map[string]string)
	cfg.SetFields = make(map[string]bool, len(raw))
	for key := range raw {
		cfg.SetFields[key] = true
	}
	return &cfg, nil
}

// validateDocument checks a decoded YAML document against the schema. The
// validator expects encoding/json values, so the document is round-tripped
// through JSON first.
func validateDocument(raw map[string]any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	err = schema.Validate(doc)
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		return errors.New(strings.Join(leafErrors(ve, nil), "; "))
	}
	return err
}

func leafErrors(ve *jsonschema.ValidationError, out []string) []string {
	if len(ve.Causes) == 0 {
		location := ve.InstanceLocation
		if location == "" {
			location = "/"
		}
		return append(out, location+": "+ve.Message)
	}
	for _, cause := range ve.Causes {
		out = leafErrors(cause, out)
	}
	return out
}

// ConfigError represents a configuration error with its origin, which is a
// file path or an environment variable name.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// LoadAll loads configuration from all sources and merges them.
// Precedence: flags > env > local config > global config > defaults
// Flags are applied by the caller, which then calls Validate.
func LoadAll() (*CLIConfig, error) {
	// Start with defaults
	cfg := NewDefault()

	// Load global config
	globalPath, err := FindGlobalConfig()
	if err != nil {
		return nil, err
	}
	if globalPath != "" {
		globalCfg, err := LoadConfigFile(globalPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, globalCfg, SourceGlobal)
	}

	// Load local config
	localPath, err := FindLocalConfig()
	if err != nil {
		return nil, err
	}
	if localPath != "" {
		localCfg, err := LoadConfigFile(localPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, localCfg, SourceLocal)
	}

	// Load environment variables
	if err := LoadEnvConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
