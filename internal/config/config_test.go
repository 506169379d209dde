package config

import (
	"os"
	"path/filepath"
	"testing"

	"nebula/internal/nebulaerr"
	"nebula/internal/paths"
)

func writeConfig(t *testing.T, root, contents string) {
	t.Helper()
	dir := filepath.Join(root, ".nebula")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLanguage, EnvFramework, EnvLocalKgDb, EnvCentralKgUrl, EnvPythonCmd} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Language != "go" {
		t.Errorf("Language = %q, want %q", cfg.Language, "go")
	}
	if cfg.LocalKgDb != paths.DefaultDBPath {
		t.Errorf("LocalKgDb = %q, want %q", cfg.LocalKgDb, paths.DefaultDBPath)
	}
	if cfg.PythonCommand != "python" {
		t.Errorf("PythonCommand = %q, want %q", cfg.PythonCommand, "python")
	}
	if !cfg.AutoSync {
		t.Error("AutoSync should be enabled by default")
	}
}

func TestLoad_FileTier(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeConfig(t, root, `{
		"language": "java",
		"framework": "spring",
		"local_kg_db": "local_kg/java_local.db",
		"python_command": "python3",
		"auto_sync": false
	}`)

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Language != "java" {
		t.Errorf("Language = %q, want %q", cfg.Language, "java")
	}
	if cfg.Framework != "spring" {
		t.Errorf("Framework = %q, want %q", cfg.Framework, "spring")
	}
	if cfg.LocalKgDb != "local_kg/java_local.db" {
		t.Errorf("LocalKgDb = %q, want file value", cfg.LocalKgDb)
	}
	if cfg.AutoSync {
		t.Error("AutoSync should honor the file value, not the default")
	}
}

func TestLoad_FileTierWinsOverEnv(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeConfig(t, root, `{"language": "rust"}`)

	// Env is fully populated but must not influence the result.
	t.Setenv(EnvLanguage, "python")
	t.Setenv(EnvLocalKgDb, "local_kg/env.db")
	t.Setenv(EnvPythonCmd, "python3.12")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Language != "rust" {
		t.Errorf("Language = %q, want file value %q", cfg.Language, "rust")
	}
	if cfg.LocalKgDb != "" {
		t.Errorf("LocalKgDb = %q, want absent (file is verbatim, no env bleed-through)", cfg.LocalKgDb)
	}
}

func TestLoad_MalformedFileIsHardError(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeConfig(t, root, `{"language": "go",`)

	// Env would succeed; a malformed file must never fall through to it.
	t.Setenv(EnvLanguage, "go")

	_, err := Load(root)
	if err == nil {
		t.Fatal("Load should fail on a malformed config file")
	}
	if !nebulaerr.Is(err, nebulaerr.ConfigError) {
		t.Errorf("error code = %q, want CONFIG_ERROR", nebulaerr.CodeOf(err))
	}
}

func TestLoad_EnvTier(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	t.Setenv(EnvLanguage, "typescript")
	t.Setenv(EnvFramework, "react")
	t.Setenv(EnvCentralKgUrl, "http://localhost:8080")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Language != "typescript" {
		t.Errorf("Language = %q, want %q", cfg.Language, "typescript")
	}
	if cfg.Framework != "react" {
		t.Errorf("Framework = %q, want %q", cfg.Framework, "react")
	}
	if cfg.CentralKgUrl != "http://localhost:8080" {
		t.Errorf("CentralKgUrl = %q, want env value", cfg.CentralKgUrl)
	}
	if cfg.LocalKgDb != paths.EnvDBPath {
		t.Errorf("LocalKgDb = %q, want env-tier default %q", cfg.LocalKgDb, paths.EnvDBPath)
	}
	if cfg.AutoSync {
		t.Error("AutoSync should stay unset in the env tier")
	}
}

func TestLoad_DefaultTier(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("Load with no sources = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}
