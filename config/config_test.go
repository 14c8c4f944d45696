package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SUSTAINWEAR_AUTH_SESSION_SECRET", "test-secret-key-for-unit-testing")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h session ttl, got %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.Cookie.SameSite != "Lax" {
		t.Errorf("expected SameSite Lax, got %s", cfg.Auth.Cookie.SameSite)
	}
	if cfg.Storage.PublicPrefix != "/uploads" {
		t.Errorf("expected /uploads prefix, got %s", cfg.Storage.PublicPrefix)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SUSTAINWEAR_AUTH_SESSION_SECRET", "test-secret-key-for-unit-testing")
	t.Setenv("SUSTAINWEAR_SERVER_PORT", "9090")
	t.Setenv("SUSTAINWEAR_DB_DRIVER", "postgres")
	t.Setenv("SUSTAINWEAR_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yaml")
	content := "auth:\n  session_secret: file-secret-0123456789\nserver:\n  port: 7000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}
	if cfg.Auth.SessionSecret != "file-secret-0123456789" {
		t.Errorf("unexpected secret %q", cfg.Auth.SessionSecret)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := Load(""); err == nil {
		t.Error("expected error when session secret is missing")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: "sqlite"},
			Auth:     AuthConfig{SessionSecret: "0123456789abcdef", SessionTTL: time.Hour},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	short := base()
	short.Auth.SessionSecret = "short"
	if err := short.Validate(); err == nil {
		t.Error("expected error for short secret")
	}

	badPort := base()
	badPort.Server.Port = 70000
	if err := badPort.Validate(); err == nil {
		t.Error("expected error for invalid port")
	}

	badDriver := base()
	badDriver.Database.Driver = "mysql"
	if err := badDriver.Validate(); err == nil {
		t.Error("expected error for unknown driver")
	}
}
