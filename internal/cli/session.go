package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tessro/cadence/internal/alert"
	"github.com/tessro/cadence/internal/api"
	cadenceerrors "github.com/tessro/cadence/internal/errors"
	"github.com/tessro/cadence/internal/kv"
	"github.com/tessro/cadence/internal/player"
	"github.com/tessro/cadence/internal/remote"
	"github.com/tessro/cadence/internal/session"
)

// cliSession bundles everything a command needs to talk to the player.
type cliSession struct {
	*session.Session
	bridge *remote.Bridge
	closer func()
}

func (s *cliSession) close() {
	s.Session.Close()
	if s.closer != nil {
		s.closer()
	}
}

// newAPIClient builds the web API client from config.
func newAPIClient() (*api.Client, error) {
	if cfg.Service.DeveloperToken == "" {
		return nil, cadenceerrors.ErrNotAuthorized
	}

	client := api.New(cfg.Service.BaseURL, cfg.Service.DeveloperToken, cfg.Service.UserToken, cfg.Service.Storefront)
	if Verbose() {
		client.SetVerbose(true, func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		})
	}
	return client, nil
}

// openSession builds the full stack: API client, remote player bridge,
// preference store, and an initialized session on top of them.
func openSession() (*cliSession, error) {
	client, err := newAPIClient()
	if err != nil {
		return nil, err
	}

	logger := newLogger()

	store, closer, err := openPrefsStore()
	if err != nil {
		return nil, err
	}

	interval := time.Duration(cfg.Playback.PollInterval) * time.Millisecond
	bridge := remote.New(client, interval, logger)

	s := session.New(session.Options{
		Provider: bridge,
		Player: player.Options{
			DeveloperToken: cfg.Service.DeveloperToken,
			AppName:        cfg.Service.AppName,
			AppVersion:     cfg.Service.AppVersion,
			Storefront:     cfg.Service.Storefront,
		},
		KV:       store,
		Notifier: alert.NewDesktop(logger),
		API:      client,
		Logger:   logger,
	})

	if err := s.Init(); err != nil {
		if closer != nil {
			closer()
		}
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	return &cliSession{Session: s, bridge: bridge, closer: closer}, nil
}

// openPrefsStore builds the configured preference backend. The returned
// closer is nil unless the backend holds a connection.
func openPrefsStore() (kv.Store, func(), error) {
	switch cfg.Prefs.Backend {
	case "memory":
		return kv.NewMemory(), nil, nil
	case "redis":
		r := kv.NewRedis(cfg.Prefs.RedisAddr, cfg.Prefs.RedisKey)
		return r, func() { _ = r.Close() }, nil
	default:
		f, err := kv.NewFile(cfg.Prefs.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open preference store: %w", err)
		}
		return f, nil, nil
	}
}

// newLogger builds the slog logger from config. Logs go to the configured
// file, or stderr; CLI output stays on stdout either way.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	out := os.Stderr
	if cfg.Log.File != "" {
		if f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600); err == nil {
			out = f
		}
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}
