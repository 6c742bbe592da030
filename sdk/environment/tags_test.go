package environment

import (
	"testing"
	"time"
)

type testConfig struct {
	Port     string        `env:"PORT" default:":3000"`
	MaxConns int           `env:"MAX_CONNS" default:"25"`
	Debug    bool          `env:"DEBUG" default:"false"`
	Timeout  time.Duration `env:"TIMEOUT" default:"5s"`
	Origins  []string      `env:"ORIGINS" default:"a,b" separator:","`
	Secret   string        `env:"SECRET" required:"true"`
}

func TestParseEnvTagsDefaults(t *testing.T) {
	t.Setenv("APP_SECRET", "shh")

	var cfg testConfig
	if err := ParseEnvTags("APP", &cfg); err != nil {
		t.Fatalf("parse env tags: %v", err)
	}

	if cfg.Port != ":3000" {
		t.Errorf("Port = %q, want %q", cfg.Port, ":3000")
	}
	if cfg.MaxConns != 25 {
		t.Errorf("MaxConns = %d, want 25", cfg.MaxConns)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if len(cfg.Origins) != 2 || cfg.Origins[0] != "a" || cfg.Origins[1] != "b" {
		t.Errorf("Origins = %v, want [a b]", cfg.Origins)
	}
}

func TestParseEnvTagsOverrides(t *testing.T) {
	t.Setenv("APP_SECRET", "shh")
	t.Setenv("APP_PORT", ":8080")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("APP_TIMEOUT", "250ms")

	var cfg testConfig
	if err := ParseEnvTags("APP", &cfg); err != nil {
		t.Fatalf("parse env tags: %v", err)
	}

	if cfg.Port != ":8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, ":8080")
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Errorf("Timeout = %v, want 250ms", cfg.Timeout)
	}
}

func TestParseEnvTagsRequired(t *testing.T) {
	var cfg testConfig
	if err := ParseEnvTags("MISSING", &cfg); err == nil {
		t.Fatal("expected error for missing required variable")
	}
}

func TestParseEnvTagsNotAPointer(t *testing.T) {
	var cfg testConfig
	if err := ParseEnvTags("APP", cfg); err == nil {
		t.Fatal("expected error for non-pointer cfg")
	}
}
