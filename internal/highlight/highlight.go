// Package highlight tokenizes a raw URL for suspicious-segment annotation
// in result views. Presentation only: nothing here feeds scoring.
package highlight

import (
	"strings"

	"github.com/raysh454/phishscope/internal/features"
	"github.com/raysh454/phishscope/internal/model"
)

// delimiters is the fixed set of characters a URL is split on. Each
// delimiter is kept as its own token so the original string can be
// reassembled in order.
const delimiters = "/:@?&=._-"

// suspiciousWords flag tokens commonly used to dress up phishing URLs.
// Matched as case-insensitive substrings.
var suspiciousWords = []string{"login", "secure", "verify", "account", "update", "confirm"}

// Segments splits raw on the delimiter set and classifies every token,
// preserving original URL order. Tokens between adjacent delimiters are
// empty strings and are kept so the output round-trips the input.
func Segments(raw string) []model.Segment {
	segs := []model.Segment{}

	start := 0
	for i, r := range raw {
		if !strings.ContainsRune(delimiters, r) {
			continue
		}
		segs = append(segs, classify(raw[start:i]))
		segs = append(segs, classify(string(r)))
		start = i + 1
	}
	segs = append(segs, classify(raw[start:]))

	return segs
}

// classify marks a token suspicious when it is IPv4-shaped, a literal @,
// or contains one of the suspicious words.
func classify(token string) model.Segment {
	if features.IsIPv4Shaped(token) || token == "@" {
		return model.Segment{Token: token, Suspicious: true}
	}

	lower := strings.ToLower(token)
	for _, w := range suspiciousWords {
		if strings.Contains(lower, w) {
			return model.Segment{Token: token, Suspicious: true}
		}
	}

	return model.Segment{Token: token}
}
