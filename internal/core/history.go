package core

// HistoryLimit caps the number of previously played items retained.
const HistoryLimit = 100

// History is a bounded, most-recent-first ledger of previously played items.
// Record is the sole mutation path; duplicates are kept as-is.
type History struct {
	entries []MediaItem
}

// Record prepends an independent copy of item, evicting the oldest entry
// once the cap is exceeded.
func (h *History) Record(item MediaItem) {
	h.entries = append([]MediaItem{*item.Clone()}, h.entries...)
	if len(h.entries) > HistoryLimit {
		h.entries = h.entries[:HistoryLimit]
	}
}

// Items returns a copy of the ledger, most recent first.
func (h *History) Items() []MediaItem {
	return CloneItems(h.entries)
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}
