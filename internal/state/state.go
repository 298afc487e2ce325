// Package state holds the local observable snapshot of the external player.
// There are exactly two writers: the event synchronizer (SDK-originated
// changes) and the command facade (user-originated preference changes).
// Everything handed out is an independent copy.
package state

import (
	"sync"

	"github.com/tessro/cadence/internal/core"
)

// Store is the process-wide snapshot of playback state.
type Store struct {
	mu sync.RWMutex

	status     core.PlaybackStatus
	nowPlaying *core.MediaItem
	time       core.TimeInfo
	buffered   float64
	volume     float64
	bitrate    core.Bitrate
	shuffle    core.ShuffleMode
	repeat     core.RepeatMode
	authorized bool
	drm        bool
	queue      core.Queue
	history    core.History
}

// NewStore returns an empty snapshot with an empty queue.
func NewStore() *Store {
	return &Store{queue: core.Queue{Position: -1}}
}

// Snapshot is a point-in-time copy of the full observable state.
type Snapshot struct {
	Status     core.PlaybackStatus
	NowPlaying *core.MediaItem
	Time       core.TimeInfo
	Buffered   float64
	Volume     float64
	Bitrate    core.Bitrate
	Shuffle    core.ShuffleMode
	Repeat     core.RepeatMode
	Authorized bool
	DRM        bool
	Queue      core.Queue
}

// Snapshot returns a copy of the current state (history excluded; use
// History for that).
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Status:     s.status,
		NowPlaying: s.nowPlaying.Clone(),
		Time:       s.time,
		Buffered:   s.buffered,
		Volume:     s.volume,
		Bitrate:    s.bitrate,
		Shuffle:    s.shuffle,
		Repeat:     s.repeat,
		Authorized: s.authorized,
		DRM:        s.drm,
		Queue:      s.queue.Clone(),
	}
}

func (s *Store) PlaybackStatus() core.PlaybackStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Store) SetPlaybackStatus(st core.PlaybackStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = st
}

// NowPlaying returns a copy of the currently loaded item, or nil.
func (s *Store) NowPlaying() *core.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nowPlaying.Clone()
}

// SetNowPlaying replaces the now-playing item with an independent copy.
func (s *Store) SetNowPlaying(item *core.MediaItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowPlaying = item.Clone()
}

func (s *Store) PlaybackTime() core.TimeInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.time
}

func (s *Store) SetPlaybackTime(t core.TimeInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.time = t
}

func (s *Store) BufferedProgress() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buffered
}

func (s *Store) SetBufferedProgress(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffered = p
}

func (s *Store) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

func (s *Store) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = v
}

func (s *Store) Bitrate() core.Bitrate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bitrate
}

func (s *Store) SetBitrate(b core.Bitrate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bitrate = b
}

func (s *Store) ShuffleMode() core.ShuffleMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shuffle
}

func (s *Store) SetShuffleMode(m core.ShuffleMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shuffle = m
}

func (s *Store) RepeatMode() core.RepeatMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repeat
}

func (s *Store) SetRepeatMode(m core.RepeatMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repeat = m
}

func (s *Store) Authorized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authorized
}

func (s *Store) SetAuthorized(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorized = ok
}

func (s *Store) SupportsDRM() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drm
}

func (s *Store) SetDRMSupport(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drm = ok
}

// Queue returns a copy of the mirrored queue.
func (s *Store) Queue() core.Queue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Clone()
}

// SetQueueItems replaces the queue items wholesale with independent copies.
// The position is preserved unless the new queue no longer covers it.
func (s *Store) SetQueueItems(items []core.MediaItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Items = core.CloneItems(items)
	if len(s.queue.Items) == 0 {
		s.queue.Position = -1
	} else if s.queue.Position >= len(s.queue.Items) {
		s.queue.Position = len(s.queue.Items) - 1
	} else if s.queue.Position < 0 {
		s.queue.Position = 0
	}
}

// SetQueuePosition replaces the queue position wholesale.
func (s *Store) SetQueuePosition(pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Position = pos
}

// SetQueue replaces the entire mirrored queue.
func (s *Store) SetQueue(q core.Queue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = q.Clone()
}

// RecordHistory prepends an item to the bounded history ledger.
func (s *Store) RecordHistory(item core.MediaItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Record(item)
}

// History returns a copy of the ledger, most recent first.
func (s *Store) History() []core.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Items()
}
