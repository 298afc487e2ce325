package core

// Queue mirrors the external player's authoritative playback queue: an
// ordered sequence of items plus the current position. Position is a 0-based
// index into Items, or -1 when the queue is empty.
type Queue struct {
	Items    []MediaItem `json:"items"`
	Position int         `json:"position"`
}

// NewQueue builds a queue holding independent copies of the given items.
func NewQueue(items []MediaItem, position int) Queue {
	q := Queue{Items: CloneItems(items), Position: position}
	if len(q.Items) == 0 {
		q.Position = -1
	}
	return q
}

// Current returns the item at the queue position, or nil if the queue is
// empty or the position is out of range.
func (q Queue) Current() *MediaItem {
	if len(q.Items) == 0 || q.Position < 0 || q.Position >= len(q.Items) {
		return nil
	}
	return &q.Items[q.Position]
}

// Upcoming returns the items after the current position.
func (q Queue) Upcoming() []MediaItem {
	if len(q.Items) == 0 || q.Position < 0 || q.Position >= len(q.Items)-1 {
		return nil
	}
	return q.Items[q.Position+1:]
}

// Len returns the total number of items in the queue.
func (q Queue) Len() int {
	return len(q.Items)
}

// IsEmpty returns true if the queue has no items.
func (q Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Clone returns an independent copy of the queue.
func (q Queue) Clone() Queue {
	return NewQueue(q.Items, q.Position)
}
