// Package playertest provides a scripted in-memory implementation of the
// player boundary for tests.
package playertest

import (
	"context"

	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/player"
)

// Fake implements player.Provider and player.Player. Events are delivered
// synchronously from Emit, preserving emission order. Property writes clamp
// the same way a real player would, so read-back behavior is observable.
type Fake struct {
	Configured    player.Options
	Registrations map[player.EventName]int
	Calls         []string
	Errs          map[string]error

	Authorized bool
	DRM        bool

	volume   float64
	shuffle  core.ShuffleMode
	repeat   core.RepeatMode
	bitrate  core.Bitrate
	buffered float64
	now      *core.MediaItem
	queue    core.Queue

	handlers map[player.EventName]player.Handler
}

// New returns a fake player with sane starting properties.
func New() *Fake {
	return &Fake{
		Registrations: make(map[player.EventName]int),
		Errs:          make(map[string]error),
		handlers:      make(map[player.EventName]player.Handler),
		volume:        0.5,
		bitrate:       core.BitrateStandard,
		queue:         core.Queue{Position: -1},
	}
}

func (f *Fake) record(call string) error {
	f.Calls = append(f.Calls, call)
	return f.Errs[call]
}

// CallCount returns how many times the named method was invoked.
func (f *Fake) CallCount(call string) int {
	n := 0
	for _, c := range f.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Emit delivers an event to the registered handler, if any.
func (f *Fake) Emit(e player.Event) {
	if h, ok := f.handlers[e.Name]; ok {
		h(e)
	}
}

// Provider

func (f *Fake) Configure(opts player.Options) error {
	f.Configured = opts
	return f.Errs["configure"]
}

func (f *Fake) Player() player.Player { return f }

func (f *Fake) IsAuthorized() bool { return f.Authorized }

func (f *Fake) AddEventListener(name player.EventName, h player.Handler) {
	f.Registrations[name]++
	f.handlers[name] = h
}

func (f *Fake) RemoveEventListener(name player.EventName) {
	delete(f.handlers, name)
}

// Playback methods

func (f *Fake) Play(ctx context.Context) error  { return f.record("play") }
func (f *Fake) Pause(ctx context.Context) error { return f.record("pause") }

func (f *Fake) SkipToPreviousItem(ctx context.Context) error {
	return f.record("skipToPreviousItem")
}

func (f *Fake) SkipToNextItem(ctx context.Context) error {
	return f.record("skipToNextItem")
}

func (f *Fake) SeekToTime(ctx context.Context, seconds float64) error {
	return f.record("seekToTime")
}

func (f *Fake) SetQueue(ctx context.Context, items []core.MediaItem) error {
	if err := f.record("setQueue"); err != nil {
		return err
	}
	f.queue = core.NewQueue(items, 0)
	return nil
}

func (f *Fake) QueuePrepend(ctx context.Context, items []core.MediaItem) error {
	if err := f.record("queuePrepend"); err != nil {
		return err
	}
	f.queue.Items = append(core.CloneItems(items), f.queue.Items...)
	return nil
}

func (f *Fake) QueueAppend(ctx context.Context, items []core.MediaItem) error {
	if err := f.record("queueAppend"); err != nil {
		return err
	}
	f.queue.Items = append(f.queue.Items, core.CloneItems(items)...)
	return nil
}

func (f *Fake) ChangeToMediaAtIndex(ctx context.Context, index int) error {
	if err := f.record("changeToMediaAtIndex"); err != nil {
		return err
	}
	f.queue.Position = index
	return nil
}

// Properties

func (f *Fake) Queue() core.Queue { return f.queue.Clone() }

func (f *Fake) SetQueueSnapshot(q core.Queue) { f.queue = q.Clone() }

func (f *Fake) NowPlaying() *core.MediaItem { return f.now.Clone() }

func (f *Fake) SetNowPlaying(item *core.MediaItem) { f.now = item.Clone() }

func (f *Fake) Volume() float64 { return f.volume }

// SetVolume clamps to [0, 1], mimicking the real player rejecting
// out-of-range values.
func (f *Fake) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	f.volume = v
}

func (f *Fake) ShuffleMode() core.ShuffleMode     { return f.shuffle }
func (f *Fake) SetShuffleMode(m core.ShuffleMode) { f.shuffle = m }
func (f *Fake) RepeatMode() core.RepeatMode       { return f.repeat }
func (f *Fake) SetRepeatMode(m core.RepeatMode)   { f.repeat = m }
func (f *Fake) Bitrate() core.Bitrate             { return f.bitrate }
func (f *Fake) SetBitrate(b core.Bitrate)         { f.bitrate = b }
func (f *Fake) BufferedProgress() float64         { return f.buffered }
func (f *Fake) SetBufferedProgress(p float64)     { f.buffered = p }
func (f *Fake) SupportsDRM() bool                 { return f.DRM }

var (
	_ player.Provider = (*Fake)(nil)
	_ player.Player   = (*Fake)(nil)
)
