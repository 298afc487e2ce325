package control

import (
	"context"
	"errors"
	"testing"

	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/kv"
	"github.com/tessro/cadence/internal/player/playertest"
	"github.com/tessro/cadence/internal/prefs"
	"github.com/tessro/cadence/internal/state"
)

func newController(t *testing.T) (*playertest.Fake, *state.Store, *kv.Memory, *Controller) {
	t.Helper()
	fake := playertest.New()
	st := state.NewStore()
	store := kv.NewMemory()
	c := New(fake, st, prefs.New(store, nil))
	return fake, st, store, c
}

func TestToggleRepeatCycle(t *testing.T) {
	_, st, _, c := newController(t)

	// 0 → 2 → 1 → 0: decrement with wrap.
	steps := []core.RepeatMode{core.RepeatAll, core.RepeatOne, core.RepeatOff, core.RepeatAll}
	for i, want := range steps {
		c.ToggleRepeat()
		if got := st.RepeatMode(); got != want {
			t.Fatalf("toggle %d: RepeatMode() = %v, want %v", i+1, got, want)
		}
	}
}

func TestToggleShuffle(t *testing.T) {
	_, st, _, c := newController(t)

	c.ToggleShuffle()
	if got := st.ShuffleMode(); got != core.ShuffleOn {
		t.Fatalf("ShuffleMode() = %v, want on", got)
	}

	c.ToggleShuffle()
	if got := st.ShuffleMode(); got != core.ShuffleOff {
		t.Fatalf("ShuffleMode() = %v, want off", got)
	}
}

func TestSetVolumeReadBack(t *testing.T) {
	_, st, store, c := newController(t)

	// The fake clamps to 1.0; local state and persistence must hold the
	// clamped value, not the requested one.
	c.SetVolume(1.8)

	if got := st.Volume(); got != 1.0 {
		t.Errorf("state volume = %v, want 1.0 (clamped)", got)
	}
	persisted, err := store.Get("cadence.volume")
	if err != nil {
		t.Fatalf("volume not persisted: %v", err)
	}
	if persisted != "1" {
		t.Errorf("persisted volume = %q, want %q", persisted, "1")
	}
}

func TestSetBitratePersists(t *testing.T) {
	_, st, store, c := newController(t)

	c.SetBitrate(core.BitrateHigh)

	if got := st.Bitrate(); got != core.BitrateHigh {
		t.Errorf("state bitrate = %v, want high", got)
	}
	persisted, err := store.Get("cadence.bitrate")
	if err != nil || persisted != "high" {
		t.Errorf("persisted bitrate = %q, %v, want %q", persisted, err, "high")
	}
}

func TestProxyCommandsDoNotMutateState(t *testing.T) {
	fake, st, _, c := newController(t)
	ctx := context.Background()

	if err := c.Play(ctx); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if err := c.SetQueue(ctx, []core.MediaItem{{ID: "a"}}); err != nil {
		t.Fatalf("SetQueue() error = %v", err)
	}

	// Local state only changes when the synchronizer observes the player's
	// events; commands themselves leave it untouched.
	if st.PlaybackStatus() != core.StatusIdle {
		t.Errorf("PlaybackStatus() = %v, want idle", st.PlaybackStatus())
	}
	if !st.Queue().IsEmpty() {
		t.Error("local queue mutated by SetQueue command")
	}

	want := []string{"play", "skipToNextItem", "setQueue"}
	if len(fake.Calls) != len(want) {
		t.Fatalf("player calls = %v, want %v", fake.Calls, want)
	}
	for i := range want {
		if fake.Calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, fake.Calls[i], want[i])
		}
	}
}

func TestProxyCommandsReturnPlayerError(t *testing.T) {
	fake, _, _, c := newController(t)

	wantErr := errors.New("no active queue")
	fake.Errs["play"] = wantErr

	if err := c.Play(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Play() error = %v, want %v (unmodified)", err, wantErr)
	}
}
