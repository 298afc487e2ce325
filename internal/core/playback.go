package core

import "fmt"

// PlaybackStatus mirrors the external player's playback state machine.
// Only the event synchronizer writes it; no local component may set it
// speculatively ahead of the player.
type PlaybackStatus int

const (
	StatusIdle PlaybackStatus = iota
	StatusLoading
	StatusPlaying
	StatusPaused
	StatusStopped
	StatusEnded
	StatusSeeking
	StatusError
)

// String returns a human-readable name for the status.
func (s PlaybackStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusStopped:
		return "stopped"
	case StatusEnded:
		return "ended"
	case StatusSeeking:
		return "seeking"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// ShuffleMode is the player's shuffle setting. The player defines exactly
// two values; there is no ternary state.
type ShuffleMode int

const (
	ShuffleOff ShuffleMode = 0
	ShuffleOn  ShuffleMode = 1
)

// RepeatMode is the player's repeat setting.
type RepeatMode int

const (
	RepeatOff RepeatMode = 0
	RepeatOne RepeatMode = 1
	RepeatAll RepeatMode = 2
)

// String returns a human-readable name for the repeat mode.
func (r RepeatMode) String() string {
	switch r {
	case RepeatOff:
		return "off"
	case RepeatOne:
		return "one"
	case RepeatAll:
		return "all"
	}
	return fmt.Sprintf("unknown(%d)", int(r))
}

// Bitrate is a quality level from the player's fixed enumeration.
type Bitrate int

const (
	BitrateStandard Bitrate = 64
	BitrateHigh     Bitrate = 256
)

// bitrateNames is the fixed name→level lookup table used for persistence.
var bitrateNames = map[string]Bitrate{
	"standard": BitrateStandard,
	"high":     BitrateHigh,
}

// String returns the persisted name for the bitrate.
func (b Bitrate) String() string {
	switch b {
	case BitrateStandard:
		return "standard"
	case BitrateHigh:
		return "high"
	}
	return fmt.Sprintf("unknown(%d)", int(b))
}

// ParseBitrate maps a persisted name back to a quality level.
func ParseBitrate(name string) (Bitrate, bool) {
	b, ok := bitrateNames[name]
	return b, ok
}
