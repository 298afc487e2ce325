package core

// MediaItem is the external player's description of a playable item.
// It is treated as an immutable value once captured: local code clones it on
// ingestion and never edits its fields, so a snapshot handed to a caller
// cannot be altered retroactively by the player mutating its own reference.
type MediaItem struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Artist     string            `json:"artist"`
	Album      string            `json:"album"`
	ArtworkURL string            `json:"artwork_url"`
	Duration   float64           `json:"duration"` // seconds
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Clone returns an independent copy of the item.
func (m *MediaItem) Clone() *MediaItem {
	if m == nil {
		return nil
	}
	out := *m
	if m.Attributes != nil {
		out.Attributes = make(map[string]string, len(m.Attributes))
		for k, v := range m.Attributes {
			out.Attributes[k] = v
		}
	}
	return &out
}

// CloneItems returns an independent copy of a slice of items.
func CloneItems(items []MediaItem) []MediaItem {
	if items == nil {
		return nil
	}
	out := make([]MediaItem, len(items))
	for i := range items {
		out[i] = *items[i].Clone()
	}
	return out
}

// TimeInfo is a playback-time update: the current position and total
// duration of the now-playing item, in seconds.
type TimeInfo struct {
	CurrentTime float64 `json:"current_time"`
	Duration    float64 `json:"duration"`
}
