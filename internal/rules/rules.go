// Package rules implements the deterministic, stateless scoring engine.
package rules

import (
	"fmt"
	"strings"

	"github.com/raysh454/phishscope/internal/model"
)

// PhishingThreshold is the score at or above which a URL is labeled
// Phishing.
const PhishingThreshold = 2

// rule is one row of the scoring table. Rules are evaluated in order and
// are independent: every matching rule appends its reason, and only rules
// with a non-zero weight move the score.
type rule struct {
	id     string
	weight int
	match  func(f model.FeatureVector, raw string) bool
	reason func(f model.FeatureVector) string
}

// scoringTable is fixed: the row order, weights and reason texts are part
// of the engine's observable contract (reason lists are ordered).
var scoringTable = []rule{
	{
		id:     "host:ip",
		weight: 3,
		match:  func(f model.FeatureVector, _ string) bool { return f.HasIP == 1 },
		reason: func(model.FeatureVector) string { return "IP address used in domain" },
	},
	{
		id:     "url:length",
		weight: 2,
		match:  func(f model.FeatureVector, _ string) bool { return f.LenURL > 75 },
		reason: func(f model.FeatureVector) string { return fmt.Sprintf("URL length %d > 75", f.LenURL) },
	},
	{
		id:     "host:subdomains",
		weight: 2,
		match:  func(f model.FeatureVector, _ string) bool { return f.SubdomainCount > 1 },
		reason: func(f model.FeatureVector) string { return fmt.Sprintf("%d subdomains", f.SubdomainCount) },
	},
	{
		id:     "url:at-sign",
		weight: 3,
		match:  func(_ model.FeatureVector, raw string) bool { return strings.Contains(raw, "@") },
		reason: func(model.FeatureVector) string { return "Contains '@' character" },
	},
	{
		id:     "url:dash",
		match:  func(_ model.FeatureVector, raw string) bool { return strings.Contains(raw, "-") },
		reason: func(model.FeatureVector) string { return "Contains dash '-'" },
	},
	{
		id:     "url:digits",
		match:  func(f model.FeatureVector, _ string) bool { return f.CountDigits > 4 },
		reason: func(f model.FeatureVector) string { return fmt.Sprintf("%d digits in URL", f.CountDigits) },
	},
	{
		id:     "url:non-alnum",
		match:  func(f model.FeatureVector, _ string) bool { return f.NonAlnumRatio > 0.25 },
		reason: func(model.FeatureVector) string { return "High non-alphanumeric character ratio" },
	},
	{
		id:     "path:entropy",
		match:  func(f model.FeatureVector, _ string) bool { return f.PathEntropy > 3.5 },
		reason: func(model.FeatureVector) string { return "High path entropy" },
	},
	{
		id: "host:short",
		match: func(f model.FeatureVector, _ string) bool {
			return f.LenHost < 20 && f.HasIP == 0 && f.SubdomainCount == 0
		},
		reason: func(model.FeatureVector) string { return "Short host, likely legitimate" },
	},
}

// Evaluate scores a feature vector (plus the raw URL, needed for the two
// literal-character checks) against the scoring table. Pure: the same
// vector and raw string always produce the same score, label and reason
// order. Malformed input cannot occur here — extraction always yields a
// well-formed, possibly degenerate vector.
func Evaluate(f model.FeatureVector, raw string) *model.RuleAssessment {
	score := 0
	reasons := []string{}

	for _, r := range scoringTable {
		if !r.match(f, raw) {
			continue
		}
		score += r.weight
		reasons = append(reasons, r.reason(f))
	}

	label := model.LabelLegitimate
	if score >= PhishingThreshold {
		label = model.LabelPhishing
	}

	return &model.RuleAssessment{
		Label:    label,
		Score:    score,
		Reasons:  reasons,
		Features: f,
	}
}
