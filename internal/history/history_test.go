package history_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/raysh454/phishscope/internal/history"
	"github.com/raysh454/phishscope/internal/model"
)

func entry(i int, rule, ml model.Label) model.HistoryEntry {
	return model.HistoryEntry{
		ID:        fmt.Sprintf("entry-%d", i),
		Timestamp: time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
		URL:       fmt.Sprintf("http://example.com/%d", i),
		RuleLabel: rule,
		MLLabel:   ml,
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	t.Parallel()
	h := history.New(10, nil)
	for i := 0; i < 3; i++ {
		h.Record(entry(i, model.LabelLegitimate, model.LabelUnavailable))
	}

	got := h.Snapshot()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range []string{"entry-2", "entry-1", "entry-0"} {
		if got[i].ID != want {
			t.Errorf("entry[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestHistory_EvictsOldestAtCapacity(t *testing.T) {
	t.Parallel()
	h := history.New(5, nil)
	for i := 0; i < 8; i++ {
		h.Record(entry(i, model.LabelLegitimate, model.LabelUnavailable))
	}

	got := h.Snapshot()
	if len(got) != 5 {
		t.Fatalf("expected capacity bound of 5, got %d", len(got))
	}
	if got[0].ID != "entry-7" {
		t.Errorf("expected newest entry first, got %q", got[0].ID)
	}
	if got[4].ID != "entry-3" {
		t.Errorf("expected entries 0-2 evicted, oldest kept is %q", got[4].ID)
	}
}

func TestHistory_ListLimit(t *testing.T) {
	t.Parallel()
	h := history.New(10, nil)
	for i := 0; i < 6; i++ {
		h.Record(entry(i, model.LabelLegitimate, model.LabelUnavailable))
	}

	if got := h.List(2); len(got) != 2 || got[0].ID != "entry-5" {
		t.Errorf("List(2) = %+v, want the two newest entries", got)
	}
	if got := h.List(0); len(got) != 6 {
		t.Errorf("List(0) must return everything, got %d entries", len(got))
	}
	if got := h.List(100); len(got) != 6 {
		t.Errorf("oversized limit must clamp, got %d entries", len(got))
	}
}

func TestHistory_SnapshotIsACopy(t *testing.T) {
	t.Parallel()
	h := history.New(10, nil)
	h.Record(entry(0, model.LabelLegitimate, model.LabelUnavailable))

	snap := h.Snapshot()
	snap[0].URL = "mutated"
	if h.Snapshot()[0].URL == "mutated" {
		t.Error("mutating a snapshot must not reach the stored record")
	}
}

func TestHistory_Aggregate(t *testing.T) {
	t.Parallel()
	h := history.New(10, nil)
	h.Record(entry(0, model.LabelPhishing, model.LabelPhishing))
	h.Record(entry(1, model.LabelPhishing, model.LabelUnavailable))
	h.Record(entry(2, model.LabelLegitimate, model.LabelLegitimate))

	stats := h.Aggregate()
	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if stats.RulePhishing != 2 {
		t.Errorf("expected 2 rule detections, got %d", stats.RulePhishing)
	}
	if stats.MLPhishing != 1 {
		t.Errorf("expected 1 model detection, got %d", stats.MLPhishing)
	}
}

func TestHistory_AggregateTracksEviction(t *testing.T) {
	t.Parallel()
	h := history.New(2, nil)
	h.Record(entry(0, model.LabelPhishing, model.LabelUnavailable))
	h.Record(entry(1, model.LabelLegitimate, model.LabelUnavailable))
	h.Record(entry(2, model.LabelLegitimate, model.LabelUnavailable))

	// The only phishing entry was evicted; aggregates reflect what is
	// retained, not everything ever recorded.
	stats := h.Aggregate()
	if stats.Total != 2 || stats.RulePhishing != 0 {
		t.Errorf("expected {2, 0}, got %+v", stats)
	}
}

func TestHistory_DefaultCapacity(t *testing.T) {
	t.Parallel()
	if got := history.New(0, nil).Capacity(); got != history.DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", history.DefaultCapacity, got)
	}
	if got := history.New(-3, nil).Capacity(); got != history.DefaultCapacity {
		t.Errorf("negative capacity must fall back to default, got %d", got)
	}
}

func TestHistory_ConcurrentRecord(t *testing.T) {
	t.Parallel()
	h := history.New(50, nil)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				h.Record(entry(g*100+i, model.LabelPhishing, model.LabelUnavailable))
			}
		}(g)
	}
	wg.Wait()

	stats := h.Aggregate()
	if stats.Total != 50 || stats.RulePhishing != 50 {
		t.Errorf("expected a full record of 50 detections, got %+v", stats)
	}
}
