// Package remote implements the player boundary on top of the streaming
// service's web API. Playback commands map to API calls; the change-event
// stream is synthesized by polling the remote player state and diffing
// successive snapshots, delivered in order from a single goroutine.
package remote

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/tessro/cadence/internal/api"
	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/player"
)

const commandTimeout = 10 * time.Second

// Bridge is an API-backed player.Provider and player.Player.
type Bridge struct {
	api      *api.Client
	log      *slog.Logger
	interval time.Duration

	mu       sync.RWMutex
	handlers map[player.EventName]player.Handler
	snap     snapshot

	done     chan struct{}
	stopOnce sync.Once
}

// New builds a bridge over the given API client. Interval is the poll
// period; zero means one second.
func New(client *api.Client, interval time.Duration, logger *slog.Logger) *Bridge {
	if interval == 0 {
		interval = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{
		api:      client,
		log:      logger,
		interval: interval,
		handlers: make(map[player.EventName]player.Handler),
		snap:     snapshot{QueuePosition: -1},
		done:     make(chan struct{}),
	}
}

// Configure pulls the initial remote snapshot so property reads are
// meaningful before the first poll tick.
func (b *Bridge) Configure(opts player.Options) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	snap, err := b.fetch(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.snap = snap
	b.mu.Unlock()
	return nil
}

// Player returns the bridge's control surface.
func (b *Bridge) Player() player.Player { return b }

// IsAuthorized reports the remote session's authorization state.
func (b *Bridge) IsAuthorized() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap.Authorized
}

// AddEventListener registers the handler for an event name.
func (b *Bridge) AddEventListener(name player.EventName, h player.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = h
}

// RemoveEventListener removes the handler for an event name.
func (b *Bridge) RemoveEventListener(name player.EventName) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, name)
}

// Playback commands

func (b *Bridge) Play(ctx context.Context) error {
	return b.api.Put(ctx, "/v1/me/player/play", nil, nil)
}

func (b *Bridge) Pause(ctx context.Context) error {
	return b.api.Put(ctx, "/v1/me/player/pause", nil, nil)
}

func (b *Bridge) SkipToPreviousItem(ctx context.Context) error {
	return b.api.Put(ctx, "/v1/me/player/previous", nil, nil)
}

func (b *Bridge) SkipToNextItem(ctx context.Context) error {
	return b.api.Put(ctx, "/v1/me/player/next", nil, nil)
}

func (b *Bridge) SeekToTime(ctx context.Context, seconds float64) error {
	path := api.BuildURL("/v1/me/player/seek", map[string]string{
		"time": strconv.FormatFloat(seconds, 'g', -1, 64),
	})
	return b.api.Put(ctx, path, nil, nil)
}

type queueWrite struct {
	IDs []string `json:"ids"`
}

func itemIDs(items []core.MediaItem) []string {
	return lo.Map(items, func(m core.MediaItem, _ int) string { return m.ID })
}

func (b *Bridge) SetQueue(ctx context.Context, items []core.MediaItem) error {
	return b.api.Put(ctx, "/v1/me/player/queue", queueWrite{IDs: itemIDs(items)}, nil)
}

func (b *Bridge) QueuePrepend(ctx context.Context, items []core.MediaItem) error {
	return b.api.Put(ctx, "/v1/me/player/queue/prepend", queueWrite{IDs: itemIDs(items)}, nil)
}

func (b *Bridge) QueueAppend(ctx context.Context, items []core.MediaItem) error {
	return b.api.Put(ctx, "/v1/me/player/queue/append", queueWrite{IDs: itemIDs(items)}, nil)
}

func (b *Bridge) ChangeToMediaAtIndex(ctx context.Context, index int) error {
	path := api.BuildURL("/v1/me/player/queue/position", map[string]string{
		"index": strconv.Itoa(index),
	})
	return b.api.Put(ctx, path, nil, nil)
}

// Properties. Reads serve the cached snapshot; writes issue the API call
// and then re-fetch so the cache holds the value the service settled on.

func (b *Bridge) Queue() core.Queue {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return core.NewQueue(b.snap.queueItems(), b.snap.QueuePosition)
}

func (b *Bridge) NowPlaying() *core.MediaItem {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap.item()
}

func (b *Bridge) Volume() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap.Volume
}

func (b *Bridge) SetVolume(v float64) {
	path := api.BuildURL("/v1/me/player/volume", map[string]string{
		"level": strconv.FormatFloat(v, 'g', -1, 64),
	})
	b.write(path)
}

func (b *Bridge) ShuffleMode() core.ShuffleMode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return core.ShuffleMode(b.snap.Shuffle)
}

func (b *Bridge) SetShuffleMode(m core.ShuffleMode) {
	path := api.BuildURL("/v1/me/player/shuffle", map[string]string{
		"state": strconv.Itoa(int(m)),
	})
	b.write(path)
}

func (b *Bridge) RepeatMode() core.RepeatMode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return core.RepeatMode(b.snap.Repeat)
}

func (b *Bridge) SetRepeatMode(m core.RepeatMode) {
	path := api.BuildURL("/v1/me/player/repeat", map[string]string{
		"state": strconv.Itoa(int(m)),
	})
	b.write(path)
}

func (b *Bridge) Bitrate() core.Bitrate {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return core.Bitrate(b.snap.Bitrate)
}

func (b *Bridge) SetBitrate(br core.Bitrate) {
	path := api.BuildURL("/v1/me/player/bitrate", map[string]string{
		"value": strconv.Itoa(int(br)),
	})
	b.write(path)
}

func (b *Bridge) BufferedProgress() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap.Buffered
}

func (b *Bridge) SupportsDRM() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap.DRM
}

// write issues a property PUT and refreshes the snapshot cache so the next
// property read returns the service's effective value.
func (b *Bridge) write(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := b.api.Put(ctx, path, nil, nil); err != nil {
		b.log.Warn("player property write failed", "path", path, "error", err)
		return
	}

	snap, err := b.fetch(ctx)
	if err != nil {
		b.log.Warn("player state refresh failed", "error", err)
		return
	}

	b.mu.Lock()
	b.snap = snap
	b.mu.Unlock()
}

var (
	_ player.Provider = (*Bridge)(nil)
	_ player.Player   = (*Bridge)(nil)
)
