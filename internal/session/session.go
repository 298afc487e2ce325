// Package session wires the sync layer together: it configures the external
// player, recovers persisted preferences, captures the initial snapshot, and
// attaches the event synchronizer. It is the surface the UI layer talks to.
package session

import (
	"context"
	"log/slog"

	"github.com/tessro/cadence/internal/alert"
	"github.com/tessro/cadence/internal/api"
	"github.com/tessro/cadence/internal/control"
	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/kv"
	"github.com/tessro/cadence/internal/player"
	"github.com/tessro/cadence/internal/prefs"
	"github.com/tessro/cadence/internal/state"
	"github.com/tessro/cadence/internal/syncer"
)

// Options configures a Session.
type Options struct {
	Provider player.Provider
	Player   player.Options
	KV       kv.Store
	Notifier alert.Notifier
	API      *api.Client
	Logger   *slog.Logger
}

// Session owns the local state snapshot and the components that keep it
// consistent with the external player. Entities live for the lifetime of the
// session; re-initialization is an idempotent no-op.
type Session struct {
	provider    player.Provider
	playerOpts  player.Options
	state       *state.Store
	prefs       *prefs.Store
	syncer      *syncer.Synchronizer
	control     *control.Controller
	api         *api.Client
	log         *slog.Logger
	initialized bool
}

// New builds an un-initialized session.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	store := opts.KV
	if store == nil {
		store = kv.NewMemory()
	}

	st := state.NewStore()
	pf := prefs.New(store, logger)

	return &Session{
		provider:   opts.Provider,
		playerOpts: opts.Player,
		state:      st,
		prefs:      pf,
		syncer:     syncer.New(opts.Provider, st, opts.Notifier, logger),
		control:    control.New(opts.Provider, st, pf),
		api:        opts.API,
		log:        logger,
	}
}

// Init configures the player, pulls its current snapshot into local state,
// applies recovered preferences back to the player, and registers the event
// listeners. Calling Init on an initialized session warns and does nothing.
func (s *Session) Init() error {
	if s.initialized {
		s.log.Warn("session already initialized, ignoring")
		return nil
	}

	if err := s.provider.Configure(s.playerOpts); err != nil {
		return err
	}

	p := s.provider.Player()

	// Recover preferences; the player's current values are the defaults for
	// anything absent or malformed.
	volume := s.prefs.LoadVolume(p.Volume())
	bitrate := s.prefs.LoadBitrate(p.Bitrate())
	shuffle := s.prefs.LoadShuffle(p.ShuffleMode())
	repeat := s.prefs.LoadRepeat(p.RepeatMode())

	p.SetVolume(volume)
	p.SetBitrate(bitrate)
	p.SetShuffleMode(shuffle)
	p.SetRepeatMode(repeat)

	// The player may have clamped what we pushed; mirror its effective values.
	s.state.SetVolume(p.Volume())
	s.state.SetBitrate(p.Bitrate())
	s.state.SetShuffleMode(p.ShuffleMode())
	s.state.SetRepeatMode(p.RepeatMode())

	s.state.SetAuthorized(s.provider.IsAuthorized())
	s.state.SetDRMSupport(p.SupportsDRM())
	s.state.SetBufferedProgress(p.BufferedProgress())
	s.state.SetNowPlaying(p.NowPlaying())
	s.state.SetQueue(p.Queue())

	s.syncer.Attach()
	s.initialized = true

	s.log.Info("session initialized",
		"authorized", s.state.Authorized(),
		"volume", s.state.Volume(),
		"bitrate", s.state.Bitrate().String(),
	)
	return nil
}

// Initialized reports whether Init has completed.
func (s *Session) Initialized() bool {
	return s.initialized
}

// Close detaches the event listeners.
func (s *Session) Close() {
	s.syncer.Detach()
}

// State returns the observable snapshot store.
func (s *Session) State() *state.Store {
	return s.state
}

// Control returns the playback command facade.
func (s *Session) Control() *control.Controller {
	return s.control
}

// API returns the web API client, or nil if none was configured.
func (s *Session) API() *api.Client {
	return s.api
}

// RecentHistory returns recently played items, most recent first. The local
// ledger only fills while this session observes item changes, so when it is
// empty the service's recently-played list answers instead.
func (s *Session) RecentHistory(ctx context.Context, limit int) ([]core.MediaItem, error) {
	items := s.state.History()
	if len(items) > 0 {
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		return items, nil
	}
	if s.api == nil {
		return nil, nil
	}
	return s.api.RecentlyPlayed(ctx, limit)
}
