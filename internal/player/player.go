// Package player defines the boundary to the external streaming-player SDK.
// The sync layer depends on these interfaces only; the SDK remains the
// authoritative source of playback, queue, and authorization state.
package player

import (
	"context"

	"github.com/tessro/cadence/internal/core"
)

// Options configures the external player SDK.
type Options struct {
	DeveloperToken string
	AppName        string
	AppVersion     string
	Storefront     string
}

// Handler consumes a single player event. The SDK delivers events strictly
// in emission order, one handler per event name.
type Handler func(Event)

// Provider is the capability set the sync layer requires from the SDK:
// configuration, instance access, event subscription, and authorization.
type Provider interface {
	Configure(opts Options) error
	Player() Player

	// IsAuthorized reports the SDK's authorization state. The sync layer
	// never grants or revokes authorization itself.
	IsAuthorized() bool

	AddEventListener(name EventName, h Handler)
	RemoveEventListener(name EventName)
}

// Player exposes the SDK's playback methods and mutable properties.
// Methods taking a context return pending results and may complete after
// arbitrary delay; property accessors are synchronous.
type Player interface {
	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	SkipToPreviousItem(ctx context.Context) error
	SkipToNextItem(ctx context.Context) error
	SeekToTime(ctx context.Context, seconds float64) error

	SetQueue(ctx context.Context, items []core.MediaItem) error
	QueuePrepend(ctx context.Context, items []core.MediaItem) error
	QueueAppend(ctx context.Context, items []core.MediaItem) error
	ChangeToMediaAtIndex(ctx context.Context, index int) error

	// Queue returns the player's authoritative queue snapshot.
	Queue() core.Queue

	// NowPlaying returns the currently loaded item, or nil.
	NowPlaying() *core.MediaItem

	Volume() float64
	SetVolume(v float64)
	ShuffleMode() core.ShuffleMode
	SetShuffleMode(m core.ShuffleMode)
	RepeatMode() core.RepeatMode
	SetRepeatMode(m core.RepeatMode)
	Bitrate() core.Bitrate
	SetBitrate(b core.Bitrate)
	BufferedProgress() float64
	SupportsDRM() bool
}
