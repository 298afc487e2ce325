package core

import "testing"

func TestQueueCurrent(t *testing.T) {
	tests := []struct {
		name     string
		queue    Queue
		wantID   string
		wantNone bool
	}{
		{
			name:     "empty queue",
			queue:    Queue{Position: -1},
			wantNone: true,
		},
		{
			name: "position in range",
			queue: Queue{
				Items:    []MediaItem{{ID: "a"}, {ID: "b"}},
				Position: 1,
			},
			wantID: "b",
		},
		{
			name: "position out of range",
			queue: Queue{
				Items:    []MediaItem{{ID: "a"}},
				Position: 5,
			},
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.queue.Current()
			if tt.wantNone {
				if got != nil {
					t.Errorf("Current() = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("Current() = %+v, want ID %q", got, tt.wantID)
			}
		})
	}
}

func TestNewQueueEmptyPosition(t *testing.T) {
	q := NewQueue(nil, 3)
	if q.Position != -1 {
		t.Errorf("Position = %d, want -1 for empty queue", q.Position)
	}
}

func TestQueueReadsOnReturnedValue(t *testing.T) {
	// Accessors must work directly on a queue returned by value, without
	// binding it to a variable first.
	if !NewQueue(nil, 0).IsEmpty() {
		t.Error("IsEmpty() = false for empty queue")
	}
	if got := NewQueue([]MediaItem{{ID: "a"}}, 0).Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if item := NewQueue([]MediaItem{{ID: "a"}}, 0).Current(); item == nil || item.ID != "a" {
		t.Errorf("Current() = %+v, want item a", item)
	}
}

func TestNewQueueCopiesItems(t *testing.T) {
	items := []MediaItem{{ID: "a", Title: "Original"}}
	q := NewQueue(items, 0)

	items[0].Title = "Mutated"

	if q.Items[0].Title != "Original" {
		t.Errorf("queued Title = %q, want %q", q.Items[0].Title, "Original")
	}
}

func TestQueueUpcoming(t *testing.T) {
	q := Queue{
		Items:    []MediaItem{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Position: 0,
	}

	up := q.Upcoming()
	if len(up) != 2 || up[0].ID != "b" || up[1].ID != "c" {
		t.Errorf("Upcoming() = %+v, want [b c]", up)
	}

	q.Position = 2
	if got := q.Upcoming(); got != nil {
		t.Errorf("Upcoming() at last position = %+v, want nil", got)
	}
}

func TestParseBitrate(t *testing.T) {
	if b, ok := ParseBitrate("high"); !ok || b != BitrateHigh {
		t.Errorf("ParseBitrate(high) = %v, %v", b, ok)
	}
	if b, ok := ParseBitrate("standard"); !ok || b != BitrateStandard {
		t.Errorf("ParseBitrate(standard) = %v, %v", b, ok)
	}
	if _, ok := ParseBitrate("extreme"); ok {
		t.Error("ParseBitrate(extreme) should not resolve")
	}
}
