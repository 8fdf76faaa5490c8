// Package history keeps a bounded, most-recent-first record of
// completed assessments in memory. Nothing is persisted: a restart
// starts empty.
package history

import (
	"sync"

	"github.com/raysh454/phishscope/internal/logging"
	"github.com/raysh454/phishscope/internal/model"
)

// DefaultCapacity bounds the history when the caller does not choose
// one.
const DefaultCapacity = 200

// History is a fixed-capacity record. Newest entries sit at index 0;
// recording at capacity evicts the oldest entry. Safe for concurrent
// use.
type History struct {
	mu       sync.Mutex
	capacity int
	entries  []model.HistoryEntry
	logger   logging.Logger
}

func New(capacity int, logger logging.Logger) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &History{
		capacity: capacity,
		entries:  make([]model.HistoryEntry, 0, capacity),
		logger:   logger,
	}
}

// Record inserts an entry at the head, evicting the tail when the
// record is full.
func (h *History) Record(entry model.HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) < h.capacity {
		h.entries = append(h.entries, model.HistoryEntry{})
	} else {
		h.logger.Debug("history full, evicting oldest entry",
			logging.Field{Key: "evicted_id", Value: h.entries[len(h.entries)-1].ID})
	}
	copy(h.entries[1:], h.entries)
	h.entries[0] = entry
}

// List returns a copy of the newest entries, up to limit. A limit of
// zero or less returns everything.
func (h *History) List(limit int) []model.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.HistoryEntry, n)
	copy(out, h.entries[:n])
	return out
}

// Snapshot returns a copy of the full record, newest first.
func (h *History) Snapshot() []model.HistoryEntry {
	return h.List(0)
}

// Aggregate recomputes counts over the current record.
func (h *History) Aggregate() model.HistoryStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	stats := model.HistoryStats{Total: len(h.entries)}
	for i := range h.entries {
		if h.entries[i].RuleLabel == model.LabelPhishing {
			stats.RulePhishing++
		}
		if h.entries[i].MLLabel == model.LabelPhishing {
			stats.MLPhishing++
		}
	}
	return stats
}

func (h *History) Capacity() int {
	return h.capacity
}
