package config

// Config is the root configuration structure.
type Config struct {
	Service  ServiceConfig  `toml:"service"`
	Prefs    PrefsConfig    `toml:"prefs"`
	Playback PlaybackConfig `toml:"playback"`
	Log      LogConfig      `toml:"log"`
}

// ServiceConfig holds streaming-service API settings.
type ServiceConfig struct {
	DeveloperToken string `toml:"developer_token"`
	UserToken      string `toml:"user_token"`
	BaseURL        string `toml:"base_url"`
	Storefront     string `toml:"storefront"`
	AppName        string `toml:"app_name"`
	AppVersion     string `toml:"app_version"`
}

// PrefsConfig selects where playback preferences persist.
type PrefsConfig struct {
	Backend   string `toml:"backend"` // memory, file, redis
	Path      string `toml:"path"`
	RedisAddr string `toml:"redis_addr"`
	RedisKey  string `toml:"redis_key"`
}

// PlaybackConfig holds player bridge settings.
type PlaybackConfig struct {
	PollInterval int `toml:"poll_interval"` // milliseconds
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
