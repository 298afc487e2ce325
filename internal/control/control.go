// Package control is the imperative command surface over the external
// player. Proxy commands forward to the player and return its result
// unmodified; the corresponding state change arrives through the event
// synchronizer. Preference commands additionally read the effective value
// back from the player and persist it.
package control

import (
	"context"

	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/player"
	"github.com/tessro/cadence/internal/prefs"
	"github.com/tessro/cadence/internal/state"
)

// Controller issues playback commands and reflects preference changes.
type Controller struct {
	provider player.Provider
	state    *state.Store
	prefs    *prefs.Store
}

// New builds a controller over the given player.
func New(provider player.Provider, st *state.Store, pf *prefs.Store) *Controller {
	return &Controller{provider: provider, state: st, prefs: pf}
}

func (c *Controller) player() player.Player {
	return c.provider.Player()
}

// Play starts or resumes playback.
func (c *Controller) Play(ctx context.Context) error {
	return c.player().Play(ctx)
}

// Pause pauses playback.
func (c *Controller) Pause(ctx context.Context) error {
	return c.player().Pause(ctx)
}

// Previous skips to the previous item.
func (c *Controller) Previous(ctx context.Context) error {
	return c.player().SkipToPreviousItem(ctx)
}

// Next skips to the next item.
func (c *Controller) Next(ctx context.Context) error {
	return c.player().SkipToNextItem(ctx)
}

// Seek moves playback to the given position in seconds.
func (c *Controller) Seek(ctx context.Context, seconds float64) error {
	return c.player().SeekToTime(ctx, seconds)
}

// PlayNext inserts items immediately after the current queue position.
func (c *Controller) PlayNext(ctx context.Context, items []core.MediaItem) error {
	return c.player().QueuePrepend(ctx, items)
}

// PlayLater appends items to the end of the queue.
func (c *Controller) PlayLater(ctx context.Context, items []core.MediaItem) error {
	return c.player().QueueAppend(ctx, items)
}

// SetQueue replaces the player's queue wholesale.
func (c *Controller) SetQueue(ctx context.Context, items []core.MediaItem) error {
	return c.player().SetQueue(ctx, items)
}

// ChangeTo jumps to the item at the given queue index.
func (c *Controller) ChangeTo(ctx context.Context, index int) error {
	return c.player().ChangeToMediaAtIndex(ctx, index)
}

// SetVolume sets the player volume, then stores the value the player
// actually settled on: the player may clamp or reject the request, so the
// read-back is authoritative, not the input.
func (c *Controller) SetVolume(v float64) {
	p := c.player()
	p.SetVolume(v)
	eff := p.Volume()
	c.state.SetVolume(eff)
	c.prefs.SaveVolume(eff)
}

// SetBitrate sets the playback quality level with read-back.
func (c *Controller) SetBitrate(b core.Bitrate) {
	p := c.player()
	p.SetBitrate(b)
	eff := p.Bitrate()
	c.state.SetBitrate(eff)
	c.prefs.SaveBitrate(eff)
}

// SetShuffle enables or disables shuffle with read-back.
func (c *Controller) SetShuffle(on bool) {
	mode := core.ShuffleOff
	if on {
		mode = core.ShuffleOn
	}
	p := c.player()
	p.SetShuffleMode(mode)
	eff := p.ShuffleMode()
	c.state.SetShuffleMode(eff)
	c.prefs.SaveShuffle(eff)
}

// SetRepeat sets the repeat mode with read-back.
func (c *Controller) SetRepeat(mode core.RepeatMode) {
	p := c.player()
	p.SetRepeatMode(mode)
	eff := p.RepeatMode()
	c.state.SetRepeatMode(eff)
	c.prefs.SaveRepeat(eff)
}

// ToggleShuffle flips shuffle between off and on; there is no third state.
func (c *Controller) ToggleShuffle() {
	c.SetShuffle(c.state.ShuffleMode() == core.ShuffleOff)
}

// ToggleRepeat cycles the repeat mode by decrementing with wrap:
// 0 → 2 → 1 → 0.
func (c *Controller) ToggleRepeat() {
	next := (c.state.RepeatMode() + 2) % 3
	c.SetRepeat(next)
}
