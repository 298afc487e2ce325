package player

import "github.com/tessro/cadence/internal/core"

// EventName identifies one of the SDK's fixed set of change events.
type EventName string

const (
	EventAuthorizationChanged    EventName = "authorizationDidChange"
	EventPlaybackStateChanged    EventName = "playbackStateDidChange"
	EventBufferedProgressChanged EventName = "bufferedProgressDidChange"
	EventNowPlayingItemChanged   EventName = "nowPlayingItemDidChange"
	EventPlaybackTimeChanged     EventName = "playbackTimeDidChange"
	EventVolumeChanged           EventName = "playbackVolumeDidChange"
	EventPrimaryPlayerChanged    EventName = "primaryPlayerDidChange"
	EventBitrateChanged          EventName = "playbackBitrateDidChange"
	EventQueueItemsChanged       EventName = "queueItemsDidChange"
	EventQueuePositionChanged    EventName = "queuePositionDidChange"
	EventPlaybackError           EventName = "mediaPlaybackError"
)

// Events lists every event name the sync layer subscribes to.
var Events = []EventName{
	EventAuthorizationChanged,
	EventPlaybackStateChanged,
	EventBufferedProgressChanged,
	EventNowPlayingItemChanged,
	EventPlaybackTimeChanged,
	EventVolumeChanged,
	EventPrimaryPlayerChanged,
	EventBitrateChanged,
	EventQueueItemsChanged,
	EventQueuePositionChanged,
	EventPlaybackError,
}

// Event carries one change notification from the SDK. Only the fields
// relevant to Name are populated.
type Event struct {
	Name     EventName
	Status   core.PlaybackStatus // EventPlaybackStateChanged
	Progress float64             // EventBufferedProgressChanged
	Item     *core.MediaItem     // EventNowPlayingItemChanged
	Time     core.TimeInfo       // EventPlaybackTimeChanged
	Items    []core.MediaItem    // EventQueueItemsChanged
	Position int                 // EventQueuePositionChanged
	Err      error               // EventPlaybackError
}
