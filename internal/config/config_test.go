package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("unexpected default addr %q", cfg.Server.Addr())
	}
	if cfg.DB.Path != "mardecortez.sqlite3" {
		t.Errorf("unexpected default db path %q", cfg.DB.Path)
	}
	if cfg.Admin.Email != "admin@mardecortez.com" {
		t.Errorf("unexpected default admin email %q", cfg.Admin.Email)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/test.sqlite3")
	t.Setenv("AUTH_JWT_SECRET", "supersecret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.DB.Path != "/tmp/test.sqlite3" {
		t.Errorf("unexpected db path %q", cfg.DB.Path)
	}
	if cfg.Auth.JWTSecret != "supersecret" {
		t.Errorf("unexpected jwt secret %q", cfg.Auth.JWTSecret)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SERVER_PORT", "0")

	if _, err := Load(); err == nil {
		t.Error("expected error for port 0")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
