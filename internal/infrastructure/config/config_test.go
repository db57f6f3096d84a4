package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("GIN_MODE", "")
		t.Setenv("LOG_LEVEL", "")

		cfg := Load()
		if cfg.Port != 8080 || cfg.Addr() != ":8080" {
			t.Fatalf("unexpected port: %+v", cfg)
		}
		if cfg.GinMode != "release" || cfg.LogLevel != "info" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("GIN_MODE", "DEBUG")
		t.Setenv("LOG_LEVEL", "Debug")

		cfg := Load()
		if cfg.Port != 9090 || cfg.GinMode != "debug" || cfg.LogLevel != "debug" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		t.Setenv("GIN_MODE", "verbose")

		cfg := Load()
		if cfg.Port != 8080 || cfg.GinMode != "release" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})
}
