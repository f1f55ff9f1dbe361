package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("ASSETLOADER_ASSETS_ROOT", "https://assets.example.com")
	t.Setenv("ASSETLOADER_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AssetsRoot != "https://assets.example.com" {
		t.Errorf("AssetsRoot = %q", cfg.AssetsRoot)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ASSETLOADER_ASSETS_ROOT", "")
	t.Setenv("ASSETLOADER_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AssetsRoot != "" {
		t.Errorf("AssetsRoot = %q, want empty", cfg.AssetsRoot)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestLogger(t *testing.T) {
	logger, err := Config{LogLevel: "warn"}.Logger()
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}
	if logger == nil {
		t.Fatal("Logger() returned nil")
	}

	if _, err := (Config{LogLevel: "shout"}).Logger(); err == nil {
		t.Error("Logger() accepted an unknown level")
	}
}
