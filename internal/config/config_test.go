package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[service]
developer_token = "dev-abc"
storefront = "gb"

[prefs]
backend = "redis"
redis_addr = "localhost:6379"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Service.DeveloperToken != "dev-abc" {
		t.Errorf("DeveloperToken = %q", cfg.Service.DeveloperToken)
	}
	if cfg.Service.Storefront != "gb" {
		t.Errorf("Storefront = %q, want gb", cfg.Service.Storefront)
	}
	if cfg.Prefs.Backend != "redis" {
		t.Errorf("Backend = %q, want redis", cfg.Prefs.Backend)
	}
	// Defaults fill unset values.
	if cfg.Playback.PollInterval != 1000 {
		t.Errorf("PollInterval = %d, want default 1000", cfg.Playback.PollInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad prefs backend",
			mutate:  func(c *Config) { c.Prefs.Backend = "sqlite" },
			wantErr: true,
		},
		{
			name:    "redis backend without addr",
			mutate:  func(c *Config) { c.Prefs.Backend = "redis" },
			wantErr: true,
		},
		{
			name:    "negative poll interval",
			mutate:  func(c *Config) { c.Playback.PollInterval = -5 },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CADENCE_STOREFRONT", "jp")
	t.Setenv("CADENCE_POLL_INTERVAL", "250")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Service.Storefront != "jp" {
		t.Errorf("Storefront = %q, want jp", cfg.Service.Storefront)
	}
	if cfg.Playback.PollInterval != 250 {
		t.Errorf("PollInterval = %d, want 250", cfg.Playback.PollInterval)
	}
}
