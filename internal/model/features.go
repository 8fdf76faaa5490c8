package model

// FeatureVector is the fixed-order numeric summary of a URL consumed by
// both the rule engine and the statistical classifier. The field order is
// a wire contract shared with the offline training pipeline: an artifact
// trained against one ordering cannot be scored with another, so any
// change here requires retraining.
type FeatureVector struct {
	// LenURL is the length of the normalized host+path, with a leading
	// "www." stripped from the host. Not the raw input length.
	LenURL int `json:"len_url"`

	// LenHost is the length of the www.-stripped host.
	LenHost int `json:"len_host"`

	// CountDigits counts decimal digits in the normalized host+path.
	CountDigits int `json:"count_digits"`

	// SubdomainCount is max(0, dots-in-stripped-host - 1): a bare
	// example.com has 0, a.b.example.com has 2.
	SubdomainCount int `json:"subdomain_count"`

	// HasIP is 1 when the original, unstripped host is a dotted-quad
	// IPv4 shape, else 0.
	HasIP int `json:"has_ip"`

	// NonAlnumRatio is the fraction of non-alphanumeric characters in
	// the stripped host+path, denominator floored at 1.
	NonAlnumRatio float64 `json:"non_alnum_ratio"`

	// PathEntropy is the Shannon entropy in bits of the path+query
	// character distribution; 0 for an empty path.
	PathEntropy float64 `json:"path_entropy"`
}

// FeatureNames lists the canonical feature order. Model artifacts record
// the names they were trained with and are validated against this list.
var FeatureNames = []string{
	"len_url",
	"len_host",
	"count_digits",
	"subdomain_count",
	"has_ip",
	"non_alnum_ratio",
	"path_entropy",
}

// NumFeatures is the width of the feature vector.
const NumFeatures = 7

// Values returns the vector in its canonical order, ready to hand to a
// model handle.
func (v FeatureVector) Values() []float64 {
	return []float64{
		float64(v.LenURL),
		float64(v.LenHost),
		float64(v.CountDigits),
		float64(v.SubdomainCount),
		float64(v.HasIP),
		v.NonAlnumRatio,
		v.PathEntropy,
	}
}
