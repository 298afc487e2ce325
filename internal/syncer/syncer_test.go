package syncer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tessro/cadence/internal/alert"
	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/player"
	"github.com/tessro/cadence/internal/player/playertest"
	"github.com/tessro/cadence/internal/state"
)

func newAttached(t *testing.T) (*playertest.Fake, *state.Store, *Synchronizer) {
	t.Helper()
	fake := playertest.New()
	st := state.NewStore()
	s := New(fake, st, nil, nil)
	s.Attach()
	return fake, st, s
}

func TestNowPlayingHistoryScenario(t *testing.T) {
	fake, st, _ := newAttached(t)

	emit := func(id string) {
		fake.Emit(player.Event{
			Name: player.EventNowPlayingItemChanged,
			Item: &core.MediaItem{ID: id},
		})
	}

	// First transition: no previous item, so nothing is recorded.
	emit("A")
	if got := st.History(); len(got) != 0 {
		t.Fatalf("history after first item = %d entries, want 0", len(got))
	}
	if now := st.NowPlaying(); now == nil || now.ID != "A" {
		t.Fatalf("NowPlaying() = %+v, want A", now)
	}

	emit("B")
	if got := st.History(); len(got) != 1 || got[0].ID != "A" {
		t.Fatalf("history after B = %+v, want [A]", got)
	}

	emit("C")
	got := st.History()
	if len(got) != 2 || got[0].ID != "B" || got[1].ID != "A" {
		t.Fatalf("history after C = %+v, want [B A]", got)
	}
	if now := st.NowPlaying(); now.ID != "C" {
		t.Errorf("NowPlaying() = %q, want C", now.ID)
	}
}

func TestHistoryBoundedUnderChurn(t *testing.T) {
	fake, st, _ := newAttached(t)

	for i := 0; i < core.HistoryLimit+20; i++ {
		fake.Emit(player.Event{
			Name: player.EventNowPlayingItemChanged,
			Item: &core.MediaItem{ID: fmt.Sprintf("item-%d", i)},
		})
	}

	got := st.History()
	if len(got) != core.HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(got), core.HistoryLimit)
	}
	// The newest history entry is the previous item of the last transition.
	wantNewest := fmt.Sprintf("item-%d", core.HistoryLimit+18)
	if got[0].ID != wantNewest {
		t.Errorf("newest entry = %q, want %q", got[0].ID, wantNewest)
	}
}

func TestDoubleAttachRegistersOnce(t *testing.T) {
	fake, st, s := newAttached(t)

	s.Attach() // Second attach must be a no-op.

	for _, name := range player.Events {
		if n := fake.Registrations[name]; n != 1 {
			t.Errorf("registrations for %s = %d, want 1", name, n)
		}
	}

	fake.Emit(player.Event{Name: player.EventNowPlayingItemChanged, Item: &core.MediaItem{ID: "A"}})
	fake.Emit(player.Event{Name: player.EventNowPlayingItemChanged, Item: &core.MediaItem{ID: "B"}})

	if got := st.History(); len(got) != 1 {
		t.Errorf("history = %d entries after two transitions, want exactly 1 (no double-count)", len(got))
	}
}

func TestPlaybackStateMutation(t *testing.T) {
	fake, st, _ := newAttached(t)

	fake.Emit(player.Event{Name: player.EventPlaybackStateChanged, Status: core.StatusPlaying})
	if st.PlaybackStatus() != core.StatusPlaying {
		t.Errorf("PlaybackStatus() = %v, want playing", st.PlaybackStatus())
	}

	fake.Emit(player.Event{Name: player.EventPlaybackStateChanged, Status: core.StatusPaused})
	if st.PlaybackStatus() != core.StatusPaused {
		t.Errorf("PlaybackStatus() = %v, want paused", st.PlaybackStatus())
	}
}

func TestVolumeReadBackIgnoresPayload(t *testing.T) {
	fake, st, _ := newAttached(t)

	fake.SetVolume(0.8)
	// The payload carries a stale value; the handler must re-read the player.
	fake.Emit(player.Event{Name: player.EventVolumeChanged, Progress: 0.1})

	if got := st.Volume(); got != 0.8 {
		t.Errorf("Volume() = %v, want 0.8 (player value, not payload)", got)
	}
}

func TestAuthorizationReadBack(t *testing.T) {
	fake, st, _ := newAttached(t)

	fake.Authorized = true
	fake.Emit(player.Event{Name: player.EventAuthorizationChanged})
	if !st.Authorized() {
		t.Error("Authorized() = false, want true")
	}

	fake.Authorized = false
	fake.Emit(player.Event{Name: player.EventAuthorizationChanged})
	if st.Authorized() {
		t.Error("Authorized() = true, want false")
	}
}

func TestBitrateAndDRMReadBack(t *testing.T) {
	fake, st, _ := newAttached(t)

	fake.SetBitrate(core.BitrateHigh)
	fake.Emit(player.Event{Name: player.EventBitrateChanged})
	if st.Bitrate() != core.BitrateHigh {
		t.Errorf("Bitrate() = %v, want high", st.Bitrate())
	}

	fake.DRM = true
	fake.Emit(player.Event{Name: player.EventPrimaryPlayerChanged})
	if !st.SupportsDRM() {
		t.Error("SupportsDRM() = false, want true")
	}
}

func TestQueueMutations(t *testing.T) {
	fake, st, _ := newAttached(t)

	items := []core.MediaItem{{ID: "a"}, {ID: "b"}}
	fake.Emit(player.Event{Name: player.EventQueueItemsChanged, Items: items})

	// Mutating the payload after delivery must not change the stored copy.
	items[0].ID = "mutated"

	q := st.Queue()
	if q.Len() != 2 || q.Items[0].ID != "a" {
		t.Errorf("Queue() = %+v, want independent copy of [a b]", q.Items)
	}

	fake.Emit(player.Event{Name: player.EventQueuePositionChanged, Position: 1})
	if got := st.Queue().Position; got != 1 {
		t.Errorf("Position = %d, want 1", got)
	}
}

func TestPlaybackTimeAndBufferedProgress(t *testing.T) {
	fake, st, _ := newAttached(t)

	fake.Emit(player.Event{
		Name: player.EventPlaybackTimeChanged,
		Time: core.TimeInfo{CurrentTime: 42.5, Duration: 180},
	})
	if got := st.PlaybackTime(); got.CurrentTime != 42.5 || got.Duration != 180 {
		t.Errorf("PlaybackTime() = %+v", got)
	}

	fake.Emit(player.Event{Name: player.EventBufferedProgressChanged, Progress: 0.33})
	if got := st.BufferedProgress(); got != 0.33 {
		t.Errorf("BufferedProgress() = %v, want 0.33", got)
	}
}

func TestPlaybackErrorRecovery(t *testing.T) {
	fake := playertest.New()
	st := state.NewStore()

	var alerts []string
	notifier := alert.Func(func(title, message string) {
		alerts = append(alerts, message)
	})

	s := New(fake, st, notifier, nil)
	s.Attach()

	fake.Emit(player.Event{Name: player.EventPlaybackError, Err: errors.New("decode failed")})

	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want exactly 1", len(alerts))
	}
	if fake.CallCount("skipToNextItem") != 1 {
		t.Errorf("skipToNextItem calls = %d, want 1", fake.CallCount("skipToNextItem"))
	}
}

func TestPlaybackErrorSkipFailureIsContained(t *testing.T) {
	fake := playertest.New()
	fake.Errs["skipToNextItem"] = errors.New("nothing to skip to")
	st := state.NewStore()

	s := New(fake, st, nil, nil)
	s.Attach()

	// Must not panic or disturb other handlers.
	fake.Emit(player.Event{Name: player.EventPlaybackError, Err: errors.New("boom")})

	fake.Emit(player.Event{Name: player.EventPlaybackStateChanged, Status: core.StatusPlaying})
	if st.PlaybackStatus() != core.StatusPlaying {
		t.Error("subsequent events not handled after failed recovery")
	}
}

func TestDetachStopsDelivery(t *testing.T) {
	fake, st, s := newAttached(t)

	s.Detach()
	fake.Emit(player.Event{Name: player.EventPlaybackStateChanged, Status: core.StatusPlaying})

	if st.PlaybackStatus() == core.StatusPlaying {
		t.Error("event applied after Detach()")
	}

	// Attach works again after Detach.
	s.Attach()
	fake.Emit(player.Event{Name: player.EventPlaybackStateChanged, Status: core.StatusPlaying})
	if st.PlaybackStatus() != core.StatusPlaying {
		t.Error("event not applied after re-Attach()")
	}
}
