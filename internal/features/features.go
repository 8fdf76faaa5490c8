// Package features computes the fixed-order numeric feature vector shared
// by the rule engine and the ML predictor.
//
// Extraction lives in exactly one routine on purpose: the classifier
// artifact is trained against vectors produced by this definition, and
// any drift between training-time and inference-time extraction silently
// corrupts predictions. Changing Extract means retraining the artifact.
package features

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/raysh454/phishscope/internal/model"
)

var ipv4Pattern = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)

// IsIPv4Shaped reports whether s looks like a dotted-quad IPv4 address.
// Octet ranges are deliberately not validated: "999.1.1.1" is shaped like
// an address and treated as one, matching the training pipeline.
func IsIPv4Shaped(s string) bool {
	return ipv4Pattern.MatchString(s)
}

// Extract computes the feature vector for a canonical URL. Deterministic:
// the same CanonicalURL always yields a bit-identical vector.
func Extract(u model.CanonicalURL) model.FeatureVector {
	stripped := strings.TrimPrefix(u.Host, "www.")
	combined := stripped + u.PathQuery

	var length, digits, nonAlnum int
	for _, r := range combined {
		length++
		if unicode.IsDigit(r) {
			digits++
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			nonAlnum++
		}
	}

	denom := length
	if denom == 0 {
		denom = 1
	}

	return model.FeatureVector{
		LenURL:         length,
		LenHost:        len([]rune(stripped)),
		CountDigits:    digits,
		SubdomainCount: max(0, strings.Count(stripped, ".")-1),
		HasIP:          boolToInt(IsIPv4Shaped(u.Host)),
		NonAlnumRatio:  float64(nonAlnum) / float64(denom),
		PathEntropy:    Entropy(u.PathQuery),
	}
}

// Entropy returns the Shannon entropy in bits of the character
// distribution of s. Empty input has zero entropy.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}

	counts := make(map[rune]int)
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}

	var ent float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		ent -= p * math.Log2(p)
	}
	return ent
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
