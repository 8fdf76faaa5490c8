package model

import "time"

// HistoryEntry is one immutable row in the assessment history. Entries
// are owned exclusively by the history component: created on every
// validated submission, never mutated, destroyed only by capacity
// eviction.
type HistoryEntry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	URL          string    `json:"url"`
	RuleLabel    Label     `json:"rule_label"`
	MLLabel      Label     `json:"ml_label"`
	MLConfidence float64   `json:"ml_confidence"`
}

// HistoryStats are the aggregate counters recomputed over the full
// current history on demand.
type HistoryStats struct {
	// Total is the number of retained entries.
	Total int `json:"total"`

	// RulePhishing counts entries the rule engine labeled Phishing.
	RulePhishing int `json:"rule_phishing"`

	// MLPhishing counts entries the classifier labeled Phishing.
	MLPhishing int `json:"ml_phishing"`
}
