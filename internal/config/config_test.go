package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Storage.Type != "memory" || cfg.Storage.GoalsKey != "academicGoals" {
		t.Fatalf("defaults %+v", cfg)
	}
	if cfg.AI.Timeout != 60*time.Second {
		t.Fatalf("ai timeout=%v", cfg.AI.Timeout)
	}
	if cfg.RateLimit.MaxRequests != 600 || cfg.RateLimit.WindowMinutes != 1 {
		t.Fatalf("rate limit %+v", cfg.RateLimit)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: release
storage:
  type: database
  goals_key: goals
database:
  driver: postgres
  host: db
  port: 5432
ai:
  model: small-model
  timeout_seconds: 15
cors:
  allowed_origins:
    - http://localhost:3000
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Storage.Type != "database" || cfg.Database.Driver != "postgres" || cfg.Database.Port != 5432 {
		t.Fatalf("cfg %+v", cfg)
	}
	if cfg.AI.Model != "small-model" || cfg.AI.Timeout != 15*time.Second {
		t.Fatalf("ai %+v", cfg.AI)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("cors %+v", cfg.CORS)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("AI_MODEL", "env-model")

	cfg, err := LoadConfig(writeConfig(t, "storage:\n  type: memory\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Type != "redis" || cfg.AI.Model != "env-model" {
		t.Fatalf("env overrides not applied: storage=%s model=%s", cfg.Storage.Type, cfg.AI.Model)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{Storage: StorageConfig{Type: "memory"}}, false},
		{"unknown storage", Config{Storage: StorageConfig{Type: "local"}}, true},
		{"bad driver", Config{Storage: StorageConfig{Type: "database"}, Database: DatabaseConfig{Driver: "sqlite"}}, true},
		{"short secret in release", Config{Server: ServerConfig{Mode: "release"}, Storage: StorageConfig{Type: "memory"}, JWT: JWTConfig{Secret: "short"}}, true},
		{"short secret in debug", Config{Server: ServerConfig{Mode: "debug"}, Storage: StorageConfig{Type: "memory"}, JWT: JWTConfig{Secret: "short"}}, false},
	}
	for _, c := range cases {
		if err := c.cfg.Validate(); (err != nil) != c.wantErr {
			t.Fatalf("%s: err=%v, wantErr=%v", c.name, err, c.wantErr)
		}
	}
}
