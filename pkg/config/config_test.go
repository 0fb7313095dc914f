package config

import (
	"os"
	"testing"
	"time"
)

type testConfig struct {
	Name    string        `yaml:"name" env:"DIFFLAB_NAME"`
	Port    int           `yaml:"port" env:"DIFFLAB_PORT"`
	Debug   bool          `yaml:"debug" env:"DIFFLAB_DEBUG"`
	Timeout time.Duration `yaml:"timeout" env:"DIFFLAB_TIMEOUT"`
	Server  struct {
		JWTSecret string `yaml:"jwt_secret" env:"DIFFLAB_JWT_SECRET"`
	} `yaml:"server"`
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "difflab-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(f.Name()) })
	f.WriteString(content)
	f.Close()
	return f.Name()
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
name: difflab
port: 8080
timeout: 15s
server:
  jwt_secret: s3cret
`)

	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "difflab" {
		t.Fatalf("expected 'difflab', got '%s'", cfg.Name)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected 8080, got %d", cfg.Port)
	}
	if cfg.Timeout != 15*time.Second {
		t.Fatalf("expected 15s, got %s", cfg.Timeout)
	}
	if cfg.Server.JWTSecret != "s3cret" {
		t.Fatalf("expected nested secret, got '%s'", cfg.Server.JWTSecret)
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeTempConfig(t, `
name: default
port: 3000
`)

	t.Setenv("DIFFLAB_NAME", "from-env")
	t.Setenv("DIFFLAB_PORT", "9090")
	t.Setenv("DIFFLAB_DEBUG", "true")
	t.Setenv("DIFFLAB_TIMEOUT", "30s")

	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "from-env" {
		t.Fatalf("expected 'from-env', got '%s'", cfg.Name)
	}
	if cfg.Port != 9090 {
		t.Fatalf("expected 9090, got %d", cfg.Port)
	}
	if !cfg.Debug {
		t.Fatal("expected debug true from env")
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected 30s, got %s", cfg.Timeout)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	t.Setenv("DIFFLAB_NAME", "env-only")
	var cfg testConfig
	if err := LoadOrDefault("/nonexistent/difflab.yaml", &cfg); err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	// Env overrides apply even without a file.
	if cfg.Name != "env-only" {
		t.Fatalf("expected 'env-only', got '%s'", cfg.Name)
	}
}
