package model

import "time"

// Label classifies an assessment outcome.
type Label string

const (
	LabelPhishing   Label = "Phishing"
	LabelLegitimate Label = "Legitimate"

	// LabelUnavailable marks an ML assessment that could not be produced
	// (no model loaded, or the handle failed internally). It is a
	// first-class outcome, not an error.
	LabelUnavailable Label = "n/a"
)

// RuleAssessment is the deterministic rule-engine verdict for one URL.
// Created fresh per request and immutable once produced.
type RuleAssessment struct {
	Label Label `json:"label"`

	// Score is the accumulated rule score; Label is Phishing when it
	// reaches the engine's threshold.
	Score int `json:"score"`

	// Reasons lists, in rule-table order, the human-readable explanation
	// for every rule that matched (including informational zero-weight
	// rules).
	Reasons []string `json:"reasons"`

	// Features is the vector the score was computed from.
	Features FeatureVector `json:"features"`
}

// MLAssessment is the statistical classifier verdict for one URL.
type MLAssessment struct {
	Label Label `json:"label"`

	// Confidence is the predicted class's probability as a percentage
	// (0-100), rounded to one decimal. 0 when unavailable.
	Confidence float64 `json:"confidence"`

	// Features is the vector handed to the model; nil when the result is
	// unavailable.
	Features *FeatureVector `json:"features,omitempty"`
}

// Segment is one highlighter token. Presentation only: segments never
// feed back into scoring.
type Segment struct {
	Token      string `json:"token"`
	Suspicious bool   `json:"suspicious"`
}

// Assessment bundles everything produced for a single submission.
type Assessment struct {
	ID         string          `json:"id"`
	URL        string          `json:"url"`
	Rule       *RuleAssessment `json:"rule"`
	ML         *MLAssessment   `json:"ml,omitempty"`
	Highlights []Segment       `json:"highlights"`
	Timestamp  time.Time       `json:"timestamp"`
}
