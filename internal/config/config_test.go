package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfigFile(t, "jwt_secret: test\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Errorf("port = %d, want %d", cfg.Port, defaultPort)
	}
	if !cfg.IsDev() {
		t.Error("expected development env by default")
	}
	if cfg.DSN == "" {
		t.Error("expected assembled DSN")
	}
	if cfg.RedisURL != "redis://127.0.0.1:6379/0" {
		t.Errorf("redis url = %q", cfg.RedisURL)
	}
}

func TestLoadStructuredDatabase(t *testing.T) {
	path := writeConfigFile(t, `
port: 8080
env: production
database:
  host: db.internal
  port: 3307
  user: mood
  password: hunter2
  name: moodprod
redis:
  host: cache.internal
  password: s3cret
  tls: true
allowed_origins:
  - " journal.example.com "
  - ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDev() {
		t.Error("env=production should not be dev")
	}
	wantDSN := "mood:hunter2@tcp(db.internal:3307)/moodprod?charset=utf8mb4&loc=Local&parseTime=True"
	if cfg.DSN != wantDSN {
		t.Errorf("dsn = %q, want %q", cfg.DSN, wantDSN)
	}
	if cfg.RedisURL != "rediss://:s3cret@cache.internal:6379/0" {
		t.Errorf("redis url = %q", cfg.RedisURL)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "journal.example.com" {
		t.Errorf("allowed origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadExplicitDSNWins(t *testing.T) {
	path := writeConfigFile(t, `
dsn: "root@tcp(localhost:3306)/override?parseTime=True"
database:
  host: ignored.example.com
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DSN != "root@tcp(localhost:3306)/override?parseTime=True" {
		t.Errorf("dsn = %q", cfg.DSN)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
