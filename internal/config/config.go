// Package config resolves the bridge configuration from its layered sources:
// the project's .nebula/config.json, the NEBULA_* environment variables, and
// built-in defaults, in that strict priority order.
package config

import (
	"os"

	"github.com/spf13/viper"

	"nebula/internal/nebulaerr"
	"nebula/internal/paths"
)

// Env variable names for the environment tier. EnvLanguage gates the tier:
// the other variables are only consulted when it is set.
const (
	EnvLanguage     = "NEBULA_LANGUAGE"
	EnvFramework    = "NEBULA_FRAMEWORK"
	EnvLocalKgDb    = "NEBULA_LOCAL_KG_DB"
	EnvCentralKgUrl = "NEBULA_CENTRAL_KG_URL"
	EnvPythonCmd    = "PYTHON_CMD"
)

// Config holds the resolved bridge configuration. Immutable once resolved
// for the lifetime of a client; an empty field means "use the built-in
// default", never an error.
type Config struct {
	Language      string `json:"language" mapstructure:"language"`
	Framework     string `json:"framework" mapstructure:"framework"`
	LocalKgDb     string `json:"local_kg_db" mapstructure:"local_kg_db"`
	CentralKgUrl  string `json:"central_kg_url" mapstructure:"central_kg_url"`
	PythonCommand string `json:"python_command" mapstructure:"python_command"`
	AutoSync      bool   `json:"auto_sync" mapstructure:"auto_sync"`
}

// DefaultConfig returns the built-in defaults (lowest priority tier).
func DefaultConfig() Config {
	return Config{
		Language:      "go",
		LocalKgDb:     paths.DefaultDBPath,
		PythonCommand: "python",
		AutoSync:      true,
	}
}

// Load resolves the configuration for projectRoot, trying sources in strict
// priority order and stopping at the first that yields data:
//
//  1. .nebula/config.json — contents taken verbatim if present; a present
//     but malformed file is a hard error, never skipped.
//  2. NEBULA_* environment variables, gated on NEBULA_LANGUAGE.
//  3. Built-in defaults.
func Load(projectRoot string) (Config, error) {
	configPath := paths.ConfigFile(projectRoot)
	if _, err := os.Stat(configPath); err == nil {
		return loadFile(configPath)
	}

	if language := os.Getenv(EnvLanguage); language != "" {
		return Config{
			Language:      language,
			Framework:     os.Getenv(EnvFramework),
			LocalKgDb:     getEnvOrDefault(EnvLocalKgDb, paths.EnvDBPath),
			CentralKgUrl:  os.Getenv(EnvCentralKgUrl),
			PythonCommand: getEnvOrDefault(EnvPythonCmd, "python"),
		}, nil
	}

	return DefaultConfig(), nil
}

// loadFile reads the config file verbatim. Missing keys stay absent here;
// defaulting happens at client construction.
func loadFile(configPath string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, nebulaerr.New(nebulaerr.ConfigError, "failed to read "+configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, nebulaerr.New(nebulaerr.ConfigError, "failed to parse "+configPath, err)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
