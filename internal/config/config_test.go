package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, dir, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "default_settings.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DSCVR_COMMON_BASE_DIR", "/tmp/dscvr")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Common.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.Common.LogLevel)
	}
	if cfg.Indexer.Host != "127.0.0.1" || cfg.Indexer.Port != 50051 {
		t.Fatalf("unexpected default listen address %s", cfg.Indexer.Addr())
	}
	if cfg.Indexer.IndexDirectoryName != "index" {
		t.Fatalf("expected default index directory, got %q", cfg.Indexer.IndexDirectoryName)
	}
	if cfg.Indexer.DBFileName != "metadata.sqlite" {
		t.Fatalf("expected default db file name, got %q", cfg.Indexer.DBFileName)
	}
}

func TestLoadHonorsEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DSCVR_COMMON_BASE_DIR", "/data/dscvr")
	t.Setenv("DSCVR_COMMON_LOG_LEVEL", "debug")
	t.Setenv("DSCVR_INDEXER_PORT", "50099")
	t.Setenv("DSCVR_INDEXER_DB_FILE_NAME", "meta.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Common.BaseDir != "/data/dscvr" {
		t.Fatalf("expected base dir override, got %q", cfg.Common.BaseDir)
	}
	if cfg.Common.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %q", cfg.Common.LogLevel)
	}
	if cfg.Indexer.Port != 50099 {
		t.Fatalf("expected port override, got %d", cfg.Indexer.Port)
	}
	if cfg.Indexer.DBFileName != "meta.db" {
		t.Fatalf("expected db file override, got %q", cfg.Indexer.DBFileName)
	}
}

func TestLoadReadsSettingsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeSettings(t, dir, `
common:
  base_dir: /var/lib/dscvr
  log_level: warn

indexer:
  host: 0.0.0.0
  port: 60000
  index_directory_name: idx
  db_file_name: files.sqlite
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Common.BaseDir != "/var/lib/dscvr" || cfg.Common.LogLevel != "warn" {
		t.Fatalf("unexpected common section: %+v", cfg.Common)
	}
	if cfg.Indexer.Addr() != "0.0.0.0:60000" {
		t.Fatalf("unexpected listen address %s", cfg.Indexer.Addr())
	}
	if cfg.Indexer.IndexDirectoryName != "idx" || cfg.Indexer.DBFileName != "files.sqlite" {
		t.Fatalf("unexpected indexer section: %+v", cfg.Indexer)
	}
}

func TestLoadRequiresBaseDir(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DSCVR_COMMON_BASE_DIR", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without a base dir")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DSCVR_COMMON_BASE_DIR", "/tmp/dscvr")
	t.Setenv("DSCVR_INDEXER_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an out-of-range port")
	}
}
