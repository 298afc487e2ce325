// Package prefs persists the user's playback preferences (volume, bitrate,
// shuffle, repeat) through the generic key-value facility.
//
// Loads never fail: a missing, corrupt, or out-of-domain persisted value
// degrades to the caller's default and the corruption is logged, not
// surfaced. Saves are fire-and-forget.
package prefs

import (
	"log/slog"
	"strconv"

	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/kv"
)

const (
	keyVolume  = "cadence.volume"
	keyBitrate = "cadence.bitrate"
	keyShuffle = "cadence.shuffle"
	keyRepeat  = "cadence.repeat"
)

// Store reads and writes named preferences.
type Store struct {
	kv  kv.Store
	log *slog.Logger
}

// New wraps a key-value store. A nil logger falls back to slog.Default.
func New(store kv.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: store, log: logger}
}

// get reads a raw preference. A missing key is normal; any other read
// failure is logged before degrading to the default.
func (s *Store) get(key string) (string, bool) {
	raw, err := s.kv.Get(key)
	if err != nil {
		if err != kv.ErrNotFound {
			s.log.Warn("failed to read preference", "key", key, "error", err)
		}
		return "", false
	}
	return raw, true
}

// LoadVolume returns the persisted volume, or def when absent or malformed.
// Valid domain is [0.0, 1.0].
func (s *Store) LoadVolume(def float64) float64 {
	raw, ok := s.get(keyVolume)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		s.log.Debug("ignoring malformed persisted volume", "value", raw)
		return def
	}
	return v
}

// SaveVolume persists the volume. The 'g'/-1 encoding round-trips the float
// without precision loss.
func (s *Store) SaveVolume(v float64) {
	s.save(keyVolume, strconv.FormatFloat(v, 'g', -1, 64))
}

// LoadBitrate returns the persisted bitrate, or def when absent or the
// stored name is not in the quality table.
func (s *Store) LoadBitrate(def core.Bitrate) core.Bitrate {
	raw, ok := s.get(keyBitrate)
	if !ok {
		return def
	}
	b, ok := core.ParseBitrate(raw)
	if !ok {
		s.log.Debug("ignoring malformed persisted bitrate", "value", raw)
		return def
	}
	return b
}

// SaveBitrate persists the bitrate by name.
func (s *Store) SaveBitrate(b core.Bitrate) {
	s.save(keyBitrate, b.String())
}

// LoadShuffle returns the persisted shuffle mode, or def.
func (s *Store) LoadShuffle(def core.ShuffleMode) core.ShuffleMode {
	raw, ok := s.get(keyShuffle)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || (n != 0 && n != 1) {
		s.log.Debug("ignoring malformed persisted shuffle mode", "value", raw)
		return def
	}
	return core.ShuffleMode(n)
}

// SaveShuffle persists the shuffle mode.
func (s *Store) SaveShuffle(m core.ShuffleMode) {
	s.save(keyShuffle, strconv.Itoa(int(m)))
}

// LoadRepeat returns the persisted repeat mode, or def.
func (s *Store) LoadRepeat(def core.RepeatMode) core.RepeatMode {
	raw, ok := s.get(keyRepeat)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 2 {
		s.log.Debug("ignoring malformed persisted repeat mode", "value", raw)
		return def
	}
	return core.RepeatMode(n)
}

// SaveRepeat persists the repeat mode.
func (s *Store) SaveRepeat(m core.RepeatMode) {
	s.save(keyRepeat, strconv.Itoa(int(m)))
}

func (s *Store) save(key, value string) {
	if err := s.kv.Set(key, value); err != nil {
		s.log.Warn("failed to persist preference", "key", key, "error", err)
	}
}
