package prefs

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/kv"
)

func TestVolumeRoundTrip(t *testing.T) {
	s := New(kv.NewMemory(), nil)

	// A value with no short decimal representation must survive unchanged.
	const v = 0.30000000000000004
	s.SaveVolume(v)

	if got := s.LoadVolume(0.5); got != v {
		t.Errorf("LoadVolume() = %v, want %v", got, v)
	}
}

func TestLoadVolumeDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   float64
	}{
		{name: "absent", stored: "", want: 0.42},
		{name: "not a number", stored: "loud", want: 0.42},
		{name: "below range", stored: "-0.5", want: 0.42},
		{name: "above range", stored: "1.5", want: 0.42},
		{name: "valid", stored: "0.8", want: 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv.NewMemory()
			if tt.stored != "" {
				_ = store.Set("cadence.volume", tt.stored)
			}
			s := New(store, nil)
			if got := s.LoadVolume(0.42); got != tt.want {
				t.Errorf("LoadVolume() = %v, want %v", got, tt.want)
			}
		})
	}
}

// brokenStore fails every read with a backend error.
type brokenStore struct{}

func (brokenStore) Get(string) (string, error) { return "", errors.New("connection reset") }
func (brokenStore) Set(string, string) error   { return nil }

func TestLoadBackendFailureLogsAndDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := New(brokenStore{}, logger)
	if got := s.LoadVolume(0.42); got != 0.42 {
		t.Errorf("LoadVolume() = %v, want default on backend failure", got)
	}
	if !strings.Contains(buf.String(), "failed to read preference") {
		t.Errorf("backend failure not logged, log output: %q", buf.String())
	}
}

func TestLoadAbsentKeyIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := New(kv.NewMemory(), logger)
	if got := s.LoadVolume(0.42); got != 0.42 {
		t.Errorf("LoadVolume() = %v, want default", got)
	}
	if strings.Contains(buf.String(), "failed to read preference") {
		t.Errorf("absent key logged as failure: %q", buf.String())
	}
}

func TestBitrateRoundTrip(t *testing.T) {
	s := New(kv.NewMemory(), nil)

	s.SaveBitrate(core.BitrateHigh)
	if got := s.LoadBitrate(core.BitrateStandard); got != core.BitrateHigh {
		t.Errorf("LoadBitrate() = %v, want high", got)
	}
}

func TestLoadBitrateUnknownName(t *testing.T) {
	store := kv.NewMemory()
	_ = store.Set("cadence.bitrate", "lossless")

	s := New(store, nil)
	if got := s.LoadBitrate(core.BitrateStandard); got != core.BitrateStandard {
		t.Errorf("LoadBitrate() = %v, want standard default", got)
	}
}

func TestShuffleDomain(t *testing.T) {
	store := kv.NewMemory()
	_ = store.Set("cadence.shuffle", "3")

	s := New(store, nil)
	if got := s.LoadShuffle(core.ShuffleOff); got != core.ShuffleOff {
		t.Errorf("LoadShuffle() = %v, want off default for out-of-domain value", got)
	}

	s.SaveShuffle(core.ShuffleOn)
	if got := s.LoadShuffle(core.ShuffleOff); got != core.ShuffleOn {
		t.Errorf("LoadShuffle() = %v, want on", got)
	}
}

func TestRepeatDomain(t *testing.T) {
	store := kv.NewMemory()
	_ = store.Set("cadence.repeat", "7")

	s := New(store, nil)
	if got := s.LoadRepeat(core.RepeatAll); got != core.RepeatAll {
		t.Errorf("LoadRepeat() = %v, want default for out-of-domain value", got)
	}

	s.SaveRepeat(core.RepeatOne)
	if got := s.LoadRepeat(core.RepeatOff); got != core.RepeatOne {
		t.Errorf("LoadRepeat() = %v, want one", got)
	}
}
