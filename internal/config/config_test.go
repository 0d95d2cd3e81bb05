package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.VaultDir != "." {
					t.Errorf("Expected default VaultDir '.', got '%s'", cfg.VaultDir)
				}
				if len(cfg.Languages) != 1 || cfg.Languages[0] != "d3" {
					t.Errorf("Expected default Languages [d3], got %v", cfg.Languages)
				}
				if cfg.OutputFormat != "json" {
					t.Errorf("Expected default OutputFormat 'json', got '%s'", cfg.OutputFormat)
				}
				if cfg.WatchDebounce != 300*time.Millisecond {
					t.Errorf("Expected default WatchDebounce 300ms, got %s", cfg.WatchDebounce)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel 'info', got '%s'", cfg.LogLevel)
				}
				if cfg.TemplatesDir != "" {
					t.Errorf("Expected empty TemplatesDir, got '%s'", cfg.TemplatesDir)
				}
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"CHARTNOTE_VAULT_DIR":      "/notes",
				"CHARTNOTE_LANGUAGES":      "d3,d3js",
				"CHARTNOTE_TEMPLATES_DIR":  "/tpl",
				"CHARTNOTE_OUTPUT_FORMAT":  "yaml",
				"CHARTNOTE_WATCH_DEBOUNCE": "1s",
				"LOG_LEVEL":                "debug",
				"LOG_FORMAT":               "json",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.VaultDir != "/notes" {
					t.Errorf("Expected VaultDir '/notes', got '%s'", cfg.VaultDir)
				}
				if len(cfg.Languages) != 2 || cfg.Languages[1] != "d3js" {
					t.Errorf("Expected Languages [d3 d3js], got %v", cfg.Languages)
				}
				if cfg.TemplatesDir != "/tpl" {
					t.Errorf("Expected TemplatesDir '/tpl', got '%s'", cfg.TemplatesDir)
				}
				if cfg.OutputFormat != "yaml" {
					t.Errorf("Expected OutputFormat 'yaml', got '%s'", cfg.OutputFormat)
				}
				if cfg.WatchDebounce != time.Second {
					t.Errorf("Expected WatchDebounce 1s, got %s", cfg.WatchDebounce)
				}
				if cfg.LogFormat != "json" {
					t.Errorf("Expected LogFormat 'json', got '%s'", cfg.LogFormat)
				}
			},
		},
		{
			name:        "invalid output format",
			envVars:     map[string]string{"CHARTNOTE_OUTPUT_FORMAT": "xml"},
			expectError: true,
		},
		{
			name:        "invalid debounce",
			envVars:     map[string]string{"CHARTNOTE_WATCH_DEBOUNCE": "soon"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			cfg, err := Load(context.Background())
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{OutputFormat: "json", WatchDebounce: 0, Languages: []string{"d3"}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero debounce")
	}
	cfg.WatchDebounce = time.Second
	cfg.Languages = nil
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty languages")
	}
	cfg.Languages = []string{"d3"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
