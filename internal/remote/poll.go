package remote

import (
	"context"
	"time"

	"github.com/tessro/cadence/internal/api"
	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/player"
)

// snapshot is the remote player state document served by GET /v1/me/player.
type snapshot struct {
	Authorized    bool           `json:"authorized"`
	Status        string         `json:"status"`
	Volume        float64        `json:"volume"`
	Shuffle       int            `json:"shuffle"`
	Repeat        int            `json:"repeat"`
	Bitrate       int            `json:"bitrate"`
	Buffered      float64        `json:"bufferedProgress"`
	DRM           bool           `json:"drm"`
	Item          *api.Resource  `json:"item"`
	CurrentTime   float64        `json:"currentTime"`
	Duration      float64        `json:"duration"`
	QueueItems    []api.Resource `json:"queue"`
	QueuePosition int            `json:"queuePosition"`
}

var statusNames = map[string]core.PlaybackStatus{
	"idle":    core.StatusIdle,
	"loading": core.StatusLoading,
	"playing": core.StatusPlaying,
	"paused":  core.StatusPaused,
	"stopped": core.StatusStopped,
	"ended":   core.StatusEnded,
	"seeking": core.StatusSeeking,
	"error":   core.StatusError,
}

func (s snapshot) status() core.PlaybackStatus {
	return statusNames[s.Status]
}

func (s snapshot) item() *core.MediaItem {
	if s.Item == nil {
		return nil
	}
	item := s.Item.MediaItem()
	return &item
}

func (s snapshot) queueItems() []core.MediaItem {
	items := make([]core.MediaItem, 0, len(s.QueueItems))
	for _, r := range s.QueueItems {
		items = append(items, r.MediaItem())
	}
	return items
}

func (s snapshot) time() core.TimeInfo {
	return core.TimeInfo{CurrentTime: s.CurrentTime, Duration: s.Duration}
}

// fetch retrieves the current remote player state.
func (b *Bridge) fetch(ctx context.Context) (snapshot, error) {
	snap := snapshot{QueuePosition: -1}
	if err := b.api.Get(ctx, "/v1/me/player", &snap); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// Watch polls the remote player until the context is canceled or Stop is
// called. Each tick diffs the new snapshot against the previous one and
// dispatches the corresponding events. Dispatch happens on this goroutine,
// so listeners observe changes one at a time in poll order.
func (b *Bridge) Watch(ctx context.Context) error {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.done:
			return nil
		case <-ticker.C:
			// A failed poll is a transport problem, not a playback failure
			// reported by the player; skip the tick and try again.
			curr, err := b.fetch(ctx)
			if err != nil {
				b.log.Warn("player state poll failed", "error", err)
				continue
			}

			b.mu.Lock()
			prev := b.snap
			b.snap = curr
			b.mu.Unlock()

			for _, e := range diff(prev, curr) {
				b.emit(e)
			}
		}
	}
}

// Stop ends the watch loop.
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() { close(b.done) })
}

func (b *Bridge) emit(e player.Event) {
	b.mu.RLock()
	h, ok := b.handlers[e.Name]
	b.mu.RUnlock()
	if ok {
		h(e)
	}
}

// diff compares two snapshots and returns the events a live player would
// have fired for the transition. The cache is updated before dispatch, so
// listeners that re-read player properties see the new values.
func diff(prev, curr snapshot) []player.Event {
	var events []player.Event

	if prev.Authorized != curr.Authorized {
		events = append(events, player.Event{Name: player.EventAuthorizationChanged})
	}
	if prev.Status != curr.Status {
		events = append(events, player.Event{
			Name:   player.EventPlaybackStateChanged,
			Status: curr.status(),
		})
	}
	if prev.Buffered != curr.Buffered {
		events = append(events, player.Event{
			Name:     player.EventBufferedProgressChanged,
			Progress: curr.Buffered,
		})
	}
	if itemChanged(prev.Item, curr.Item) {
		events = append(events, player.Event{
			Name: player.EventNowPlayingItemChanged,
			Item: curr.item(),
		})
	}
	if prev.CurrentTime != curr.CurrentTime || prev.Duration != curr.Duration {
		events = append(events, player.Event{
			Name: player.EventPlaybackTimeChanged,
			Time: curr.time(),
		})
	}
	if prev.Volume != curr.Volume {
		events = append(events, player.Event{Name: player.EventVolumeChanged})
	}
	if prev.DRM != curr.DRM {
		events = append(events, player.Event{Name: player.EventPrimaryPlayerChanged})
	}
	if prev.Bitrate != curr.Bitrate {
		events = append(events, player.Event{Name: player.EventBitrateChanged})
	}
	if queueChanged(prev.QueueItems, curr.QueueItems) {
		events = append(events, player.Event{
			Name:  player.EventQueueItemsChanged,
			Items: curr.queueItems(),
		})
	}
	if prev.QueuePosition != curr.QueuePosition {
		events = append(events, player.Event{
			Name:     player.EventQueuePositionChanged,
			Position: curr.QueuePosition,
		})
	}

	return events
}

func itemChanged(prev, curr *api.Resource) bool {
	if prev == nil && curr == nil {
		return false
	}
	if prev == nil || curr == nil {
		return true
	}
	return prev.ID != curr.ID
}

func queueChanged(prev, curr []api.Resource) bool {
	if len(prev) != len(curr) {
		return true
	}
	for i := range prev {
		if prev[i].ID != curr[i].ID {
			return true
		}
	}
	return false
}
