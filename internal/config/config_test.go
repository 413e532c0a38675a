package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	requireNoError(t, err)
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Store.Platform != "healthconnect" {
		t.Fatalf("expected default platform healthconnect, got %q", cfg.Store.Platform)
	}
	if cfg.Store.DSN != "healthbridge.db" {
		t.Fatalf("expected default dsn healthbridge.db, got %q", cfg.Store.DSN)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.Log.Level)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "healthbridge.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
server:
  port: 9191
  mode: "debug"
store:
  platform: "healthkit"
  dsn: "/tmp/sim.db"
  source_name: "Test Watch"
log:
  level: "debug"
`), 0o644))

	cfg, err := Load(cfgPath)
	requireNoError(t, err)
	if cfg.Server.Port != 9191 {
		t.Fatalf("expected port 9191, got %d", cfg.Server.Port)
	}
	if cfg.Server.Mode != "debug" {
		t.Fatalf("expected mode debug, got %q", cfg.Server.Mode)
	}
	if cfg.Store.Platform != "healthkit" {
		t.Fatalf("expected platform healthkit, got %q", cfg.Store.Platform)
	}
	if cfg.Store.SourceName != "Test Watch" {
		t.Fatalf("expected source name from file, got %q", cfg.Store.SourceName)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("expected host default to survive, got %q", cfg.Server.Host)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "healthbridge.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
server:
  port: 9191
`), 0o644))

	t.Setenv("HEALTHBRIDGE_SERVER__PORT", "7070")
	t.Setenv("HEALTHBRIDGE_STORE__PLATFORM", "healthkit")

	cfg, err := Load(cfgPath)
	requireNoError(t, err)
	if cfg.Server.Port != 7070 {
		t.Fatalf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Store.Platform != "healthkit" {
		t.Fatalf("expected env platform healthkit, got %q", cfg.Store.Platform)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to load config file") {
		t.Fatalf("expected file load error, got %v", err)
	}
}

func TestLoad_InvalidServerPortFailsStartup(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "healthbridge.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
server:
  port: -1
`), 0o644))

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "invalid server.port") {
		t.Fatalf("expected invalid server.port error, got %v", err)
	}
}

func TestLoad_InvalidPlatformFailsStartup(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "healthbridge.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
store:
  platform: "fitbit"
`), 0o644))

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "invalid store.platform") {
		t.Fatalf("expected invalid store.platform error, got %v", err)
	}
}

func TestLoad_InvalidLogLevelFailsStartup(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "healthbridge.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
log:
  level: "chatty"
`), 0o644))

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "invalid log.level") {
		t.Fatalf("expected invalid log.level error, got %v", err)
	}
}

func TestLoad_EmptyDSNFailsStartup(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "healthbridge.yaml")
	requireNoError(t, os.WriteFile(cfgPath, []byte(`
store:
  dsn: " "
`), 0o644))

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "store.dsn is required") {
		t.Fatalf("expected store.dsn error, got %v", err)
	}
}

func requireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
