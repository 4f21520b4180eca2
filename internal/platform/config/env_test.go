package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Addr string `env:"RITUAL_TEST_ADDR" envDefault:"[::1]:50051"`
	Max  int    `env:"RITUAL_TEST_MAX" envDefault:"0"`
}

type prefixedTestConfig struct {
	Addr string `env:"ADDR" envDefault:"127.0.0.1:1"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "[::1]:50051" {
		t.Fatalf("expected default addr [::1]:50051, got %q", cfg.Addr)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("RITUAL_TEST_ADDR", "127.0.0.1:7000")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "127.0.0.1:7000" {
		t.Fatalf("expected addr override, got %q", cfg.Addr)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("RITUAL_TEST_MAX", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	var cfg prefixedTestConfig
	t.Setenv("RITUAL_ADDR", "127.0.0.1:9000")

	if err := ParseEnvWithPrefix(&cfg, EnvPrefix); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("expected prefixed addr, got %q", cfg.Addr)
	}
}
