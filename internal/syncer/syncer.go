// Package syncer subscribes to the external player's change events and
// translates each one into a single deterministic mutation of the local
// state store. It is the only writer of SDK-originated state.
package syncer

import (
	"context"
	"log/slog"

	"github.com/tessro/cadence/internal/alert"
	"github.com/tessro/cadence/internal/player"
	"github.com/tessro/cadence/internal/state"
)

// playbackErrorAlert is the generic message shown when the player reports a
// playback failure.
const playbackErrorAlert = "Playback failed. Skipping to the next item."

// Synchronizer owns the listener lifecycle against the external player.
type Synchronizer struct {
	provider player.Provider
	state    *state.Store
	notifier alert.Notifier
	log      *slog.Logger
	attached bool
}

// New builds a synchronizer. A nil notifier discards alerts; a nil logger
// falls back to slog.Default.
func New(provider player.Provider, st *state.Store, notifier alert.Notifier, logger *slog.Logger) *Synchronizer {
	if notifier == nil {
		notifier = alert.Func(func(string, string) {})
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Synchronizer{
		provider: provider,
		state:    st,
		notifier: notifier,
		log:      logger,
	}
}

// Attach registers the fixed set of event listeners. A second call is a
// no-op with a warning, so re-initialization cannot double-subscribe and
// double-count history or state churn.
func (s *Synchronizer) Attach() {
	if s.attached {
		s.log.Warn("event listeners already attached, ignoring")
		return
	}
	s.attached = true

	handlers := map[player.EventName]player.Handler{
		player.EventAuthorizationChanged:    s.onAuthorizationChanged,
		player.EventPlaybackStateChanged:    s.onPlaybackStateChanged,
		player.EventBufferedProgressChanged: s.onBufferedProgressChanged,
		player.EventNowPlayingItemChanged:   s.onNowPlayingItemChanged,
		player.EventPlaybackTimeChanged:     s.onPlaybackTimeChanged,
		player.EventVolumeChanged:           s.onVolumeChanged,
		player.EventPrimaryPlayerChanged:    s.onPrimaryPlayerChanged,
		player.EventBitrateChanged:          s.onBitrateChanged,
		player.EventQueueItemsChanged:       s.onQueueItemsChanged,
		player.EventQueuePositionChanged:    s.onQueuePositionChanged,
		player.EventPlaybackError:           s.onPlaybackError,
	}

	for _, name := range player.Events {
		s.provider.AddEventListener(name, s.isolate(name, handlers[name]))
	}
}

// Detach removes every listener. Attach may be called again afterwards.
func (s *Synchronizer) Detach() {
	if !s.attached {
		return
	}
	for _, name := range player.Events {
		s.provider.RemoveEventListener(name)
	}
	s.attached = false
}

// Attached reports whether listeners are currently registered.
func (s *Synchronizer) Attached() bool {
	return s.attached
}

// isolate keeps a panicking handler from disabling the others: each handler
// is independent, and a failure in one must not deregister the rest.
func (s *Synchronizer) isolate(name player.EventName, h player.Handler) player.Handler {
	return func(e player.Event) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("event handler panicked", "event", string(name), "panic", r)
			}
		}()
		h(e)
	}
}

func (s *Synchronizer) onAuthorizationChanged(player.Event) {
	s.state.SetAuthorized(s.provider.IsAuthorized())
}

func (s *Synchronizer) onPlaybackStateChanged(e player.Event) {
	s.state.SetPlaybackStatus(e.Status)
}

func (s *Synchronizer) onBufferedProgressChanged(e player.Event) {
	s.state.SetBufferedProgress(e.Progress)
}

// onNowPlayingItemChanged records the previous item into history, if one
// existed, before replacing the now-playing item. The very first transition
// of a session records nothing.
func (s *Synchronizer) onNowPlayingItemChanged(e player.Event) {
	if prev := s.state.NowPlaying(); prev != nil {
		s.state.RecordHistory(*prev)
	}
	s.state.SetNowPlaying(e.Item)
}

func (s *Synchronizer) onPlaybackTimeChanged(e player.Event) {
	s.state.SetPlaybackTime(e.Time)
}

// onVolumeChanged re-reads the player rather than trusting the event
// payload, which can carry stale or partial values.
func (s *Synchronizer) onVolumeChanged(player.Event) {
	s.state.SetVolume(s.provider.Player().Volume())
}

func (s *Synchronizer) onPrimaryPlayerChanged(player.Event) {
	s.state.SetDRMSupport(s.provider.Player().SupportsDRM())
}

func (s *Synchronizer) onBitrateChanged(player.Event) {
	s.state.SetBitrate(s.provider.Player().Bitrate())
}

func (s *Synchronizer) onQueueItemsChanged(e player.Event) {
	s.state.SetQueueItems(e.Items)
}

func (s *Synchronizer) onQueuePositionChanged(e player.Event) {
	s.state.SetQueuePosition(e.Position)
}

// onPlaybackError logs the error, raises one user-visible alert, then skips
// to the next item as recovery. The skip is best-effort; its own failure
// surfaces through the skip operation, not here.
func (s *Synchronizer) onPlaybackError(e player.Event) {
	s.log.Error("playback error reported by player", "error", e.Err)
	s.notifier.Alert("Playback error", playbackErrorAlert)
	if err := s.provider.Player().SkipToNextItem(context.Background()); err != nil {
		s.log.Warn("skip-next recovery failed", "error", err)
	}
}
