// Package paths centralizes the project-relative locations the bridge uses:
// the .nebula configuration directory, its log directory, and the default
// knowledge-graph database path.
package paths

import (
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the project-relative configuration directory
	ConfigDirName = ".nebula"
	// ConfigFileName is the configuration file inside ConfigDirName
	ConfigFileName = "config.json"
	// DefaultDBPath is the knowledge-graph database path used when no
	// source supplies one
	DefaultDBPath = "local_kg/nebula_protocol_local.db"
	// EnvDBPath is the database path used within the environment tier when
	// NEBULA_LOCAL_KG_DB is unset
	EnvDBPath = "local_kg/project_local.db"
)

// ConfigDir returns the configuration directory under projectRoot.
func ConfigDir(projectRoot string) string {
	return filepath.Join(projectRoot, ConfigDirName)
}

// ConfigFile returns the configuration file path under projectRoot.
func ConfigFile(projectRoot string) string {
	return filepath.Join(ConfigDir(projectRoot), ConfigFileName)
}

// LogsDir returns the log directory under projectRoot.
func LogsDir(projectRoot string) string {
	return filepath.Join(ConfigDir(projectRoot), "logs")
}

// EnsureLogsDir creates the log directory if it does not exist and returns it.
func EnsureLogsDir(projectRoot string) (string, error) {
	dir := LogsDir(projectRoot)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// FindProjectRoot walks up from startDir looking for a .nebula directory.
// If none is found it returns startDir, so a project without configuration
// still resolves to a usable working directory.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for {
		if info, err := os.Stat(filepath.Join(dir, ConfigDirName)); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return startDir
		}
		dir = parent
	}
}
