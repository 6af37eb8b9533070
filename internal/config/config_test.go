package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("default addr %q", cfg.Addr)
	}
	if cfg.SanityDataset != "production" {
		t.Errorf("default dataset %q", cfg.SanityDataset)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("default cache ttl %v", cfg.CacheTTL)
	}
	if !cfg.SecureCookies {
		t.Error("secure cookies should default on")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STUDIO_SANITY_PROJECT_ID", "abc123")
	t.Setenv("STUDIO_ADDR", ":9090")
	t.Setenv("STUDIO_DEV", "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SanityProjectID != "abc123" {
		t.Errorf("project id %q", cfg.SanityProjectID)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("addr %q", cfg.Addr)
	}
	if !cfg.Dev {
		t.Error("dev mode should be on")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load("/nonexistent/studio.yaml"); err == nil {
		t.Error("explicitly named missing config file must error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty config should not validate")
	}

	cfg.SanityProjectID = "abc123"
	if err := cfg.Validate(); err == nil {
		t.Error("session secret still missing")
	}

	cfg.SessionSecret = "s3cret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
