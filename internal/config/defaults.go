package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			Storefront: "us",
			AppName:    "cadence",
			AppVersion: "1.0",
		},
		Prefs: PrefsConfig{
			Backend: "file",
		},
		Playback: PlaybackConfig{
			PollInterval: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Service
	if c.Service.Storefront == "" {
		c.Service.Storefront = d.Service.Storefront
	}
	if c.Service.AppName == "" {
		c.Service.AppName = d.Service.AppName
	}
	if c.Service.AppVersion == "" {
		c.Service.AppVersion = d.Service.AppVersion
	}

	// Prefs
	if c.Prefs.Backend == "" {
		c.Prefs.Backend = d.Prefs.Backend
	}

	// Playback
	if c.Playback.PollInterval == 0 {
		c.Playback.PollInterval = d.Playback.PollInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
