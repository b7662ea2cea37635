package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "config.yaml", `
server:
  port: "9000"
database:
  uri: mongodb://yaml-host:27017
  name: from_yaml
jwt:
  secret: yaml-secret
  expiration: 30m
rate_limit:
  auth: 7
`)
	envPath := writeFile(t, dir, ".env", "MONGO_DB=from_dotenv\nRATE_LIMIT_WRITE=12\n")

	t.Setenv("ENV_FILE", envPath)
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "7000")
	t.Setenv("RATE_LIMIT_WRITE", "")
	os.Unsetenv("RATE_LIMIT_WRITE")
	t.Setenv("MONGO_DB", "")
	os.Unsetenv("MONGO_DB")

	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "7000" {
		t.Errorf("env should beat yaml: port = %q", cfg.Server.Port)
	}
	if cfg.Database.URI != "mongodb://yaml-host:27017" {
		t.Errorf("yaml should beat defaults: uri = %q", cfg.Database.URI)
	}
	if cfg.Database.Name != "from_dotenv" {
		t.Errorf(".env should beat yaml: db = %q", cfg.Database.Name)
	}
	if cfg.JWT.Expiration != 30*time.Minute {
		t.Errorf("expiration = %v", cfg.JWT.Expiration)
	}
	if cfg.RateLimit.Auth != 7 || cfg.RateLimit.Write != 12 || cfg.RateLimit.General != 100 {
		t.Errorf("rate limits = %+v", cfg.RateLimit)
	}
	if cfg.RateLimit.Window != 15*time.Minute || cfg.Storage.SignedURLTTL != 10*time.Minute {
		t.Errorf("defaults lost: %+v %+v", cfg.RateLimit, cfg.Storage)
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}

	t.Setenv("APP_ENV", "test")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("test env should not require secrets: %v", err)
	}
	if !cfg.IsTest() || cfg.StorageConfigured() {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestNodeEnvFallback(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "test")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Env != "test" {
		t.Fatalf("env = %q, want test", cfg.Server.Env)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	p := writeFile(t, t.TempDir(), "config.yaml", "server: [unterminated")
	if _, err := Load(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTrustedProxies(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", "test")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Server.TrustedProxies) != 0 {
		t.Fatalf("default trusted proxies = %v, want none", cfg.Server.TrustedProxies)
	}

	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Server.TrustedProxies; len(got) != 2 || got[0] != "10.0.0.0/8" || got[1] != "192.168.1.1" {
		t.Fatalf("trusted proxies = %v", got)
	}
}
