// Package urlx normalizes raw user input into the canonical parsed form
// consumed by feature extraction.
package urlx

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"

	"github.com/raysh454/phishscope/internal/model"
)

// HasExplicitScheme reports whether raw starts with an explicit http://
// or https:// scheme.
func HasExplicitScheme(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

// Normalize parses raw into a CanonicalURL. Input without an explicit
// scheme is parsed as if prefixed with http://; this assumption must hold
// everywhere a URL is parsed, otherwise the vectors seen at training time
// and at inference time drift apart.
//
// Normalize never fails: unparseable input yields an empty host and path.
func Normalize(raw string) model.CanonicalURL {
	explicit := HasExplicitScheme(raw)

	s := raw
	if !explicit {
		s = "http://" + raw
	}

	u, err := url.Parse(s)
	if err != nil {
		return model.CanonicalURL{ExplicitScheme: explicit}
	}

	host := strings.ToLower(u.Hostname())
	if puny, err := idna.Lookup.ToASCII(host); err == nil {
		host = puny
	}

	pq := u.Path
	if u.RawQuery != "" {
		pq += "?" + u.RawQuery
	}
	// A bare root carries no signal; collapse it so length-based
	// features are not skewed by the parser's implicit "/".
	if pq == "/" {
		pq = ""
	}

	return model.CanonicalURL{
		ExplicitScheme: explicit,
		Host:           host,
		PathQuery:      pq,
	}
}
