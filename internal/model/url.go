package model

// CanonicalURL is the parsed, normalized form of a submitted URL. It is
// derived once per raw input and never mutated afterwards; every feature
// downstream is computed from this struct so the rule engine and the ML
// predictor can never disagree about what was parsed.
type CanonicalURL struct {
	// ExplicitScheme records whether the caller supplied http:// or
	// https:// themselves (as opposed to the parser assuming http://).
	ExplicitScheme bool `json:"explicit_scheme"`

	// Host is the lower-cased hostname, or "" when parsing failed.
	Host string `json:"host"`

	// PathQuery is the path concatenated with "?"+query when a query is
	// present. A bare root path is collapsed to "" so it carries no
	// length signal.
	PathQuery string `json:"path_query"`
}
