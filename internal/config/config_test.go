package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"sortdir/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SORTDIR_LOG_LEVEL", "")
	t.Setenv("SORTDIR_LOG_FORMAT", "")
	testChdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "sortdir", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLock := filepath.Join(tempHome, ".local", "state", "sortdir", "locks")
	if cfg.Paths.LockDir != wantLock {
		t.Fatalf("unexpected lock dir: got %q want %q", cfg.Paths.LockDir, wantLock)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected file logging disabled by default, got %q", cfg.Paths.LogDir)
	}
	if cfg.LogFilePath() != "" {
		t.Fatalf("expected empty log file path, got %q", cfg.LogFilePath())
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.MaxExtractedBytes() != 10240<<20 {
		t.Fatalf("unexpected extraction cap: %d", cfg.MaxExtractedBytes())
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.LockDir)
	if err != nil {
		t.Fatalf("expected lock dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be directory", cfg.Paths.LockDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("SORTDIR_LOG_LEVEL", "")
	t.Setenv("SORTDIR_LOG_FORMAT", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "sortdir.toml")

	type payload struct {
		Paths struct {
			LockDir string `toml:"lock_dir"`
			LogDir  string `toml:"log_dir"`
		} `toml:"paths"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
		Archives struct {
			MaxExtractedMiB int `toml:"max_extracted_mib"`
		} `toml:"archives"`
	}
	custom := payload{}
	custom.Paths.LockDir = filepath.Join(tempDir, "locks")
	custom.Paths.LogDir = filepath.Join(tempDir, "logs")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = " Debug "
	custom.Archives.MaxExtractedMiB = 0
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
	if cfg.MaxExtractedBytes() != 0 {
		t.Fatalf("expected unlimited extraction, got %d", cfg.MaxExtractedBytes())
	}
	if cfg.LogFilePath() != filepath.Join(tempDir, "logs", "sortdir.log") {
		t.Fatalf("unexpected log file path: %q", cfg.LogFilePath())
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.LogDir); err != nil {
		t.Fatalf("expected log dir to exist: %v", err)
	}
}

func TestLoadProjectConfigFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SORTDIR_LOG_LEVEL", "")
	t.Setenv("SORTDIR_LOG_FORMAT", "")
	project := t.TempDir()
	testChdir(t, project)
	if err := os.WriteFile(filepath.Join(project, "sortdir.toml"), []byte("[logging]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if filepath.Base(resolved) != "sortdir.toml" {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected level from project config, got %q", cfg.Logging.Level)
	}
}

func TestEnvVarOverridesConfigFileForLogging(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sortdir.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nformat = \"console\"\nlevel = \"info\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SORTDIR_LOG_FORMAT", "json")
	t.Setenv("SORTDIR_LOG_LEVEL", "error")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format from env, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected level from env, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sortdir.toml")
	if err := os.WriteFile(configPath, []byte("[rules]\nJPG = \"video\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown [rules] table to be rejected")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "max_extracted_mib") {
		t.Fatalf("sample config missing archives section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.LockDir, "sortdir") {
		t.Fatalf("expected lock dir to contain sortdir, got %q", cfg.Paths.LockDir)
	}
	if cfg.Archives.MaxExtractedMiB != config.Default().Archives.MaxExtractedMiB {
		t.Fatalf("sample cap %d differs from default", cfg.Archives.MaxExtractedMiB)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg = config.Default()
	cfg.Archives.MaxExtractedMiB = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative extraction cap")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	cfg.Paths.LockDir = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty lock dir")
	}
}

func TestSetLogging(t *testing.T) {
	cfg := config.Default()
	if err := cfg.SetLogging("DEBUG", ""); err != nil {
		t.Fatalf("SetLogging: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging after override: %+v", cfg.Logging)
	}
	if err := cfg.SetLogging("", "yaml"); err == nil {
		t.Fatal("expected invalid format override to fail")
	}
}

// testChdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
