package config

import (
	"errors"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/reports")
	t.Setenv("SESSION_JWT_SECRET", "test-secret")
}

func TestLoadRequiresStoreConfig(t *testing.T) {
	tests := []struct {
		name   string
		dsn    string
		secret string
	}{
		{"both missing", "", ""},
		{"dsn missing", "", "secret"},
		{"secret missing", "postgres://localhost/db", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("POSTGRES_DSN", tt.dsn)
			t.Setenv("SESSION_JWT_SECRET", tt.secret)
			_, err := Load()
			if !errors.Is(err, ErrMissingStoreConfig) {
				t.Errorf("err = %v, want ErrMissingStoreConfig", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.App.Name != "civic-report-service" {
		t.Errorf("app name = %q", cfg.App.Name)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Errorf("addr = %q", cfg.App.Addr())
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Errorf("request timeout = %v", cfg.App.RequestTimeout())
	}
	if cfg.Session.TTL() != 720*time.Minute {
		t.Errorf("session ttl = %v", cfg.Session.TTL())
	}
	if !cfg.Postgres.RunMigrations {
		t.Error("migrations should default to enabled")
	}
	if cfg.Redis.Addr != "127.0.0.1:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SESSION_TTL_MINUTES", "30")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Errorf("port = %q", cfg.App.Port)
	}
	if cfg.Session.TTL() != 30*time.Minute {
		t.Errorf("session ttl = %v", cfg.Session.TTL())
	}
	if cfg.Postgres.RunMigrations {
		t.Error("migrations override not applied")
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logger.Level)
	}
}

func TestLoadIgnoresUnparsableOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL_MINUTES", "soon")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "yes please")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Session.TTLMinutes != 720 {
		t.Errorf("ttl minutes = %d, want fallback 720", cfg.Session.TTLMinutes)
	}
	if !cfg.Postgres.RunMigrations {
		t.Error("unparsable bool should fall back to default")
	}
}
