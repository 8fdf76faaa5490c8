package urlx_test

import (
	"testing"

	"github.com/raysh454/phishscope/internal/urlx"
)

func TestNormalize_AssumesHTTPWhenSchemeMissing(t *testing.T) {
	t.Parallel()
	c := urlx.Normalize("example.com/login")
	if c.ExplicitScheme {
		t.Error("expected ExplicitScheme == false for schemeless input")
	}
	if c.Host != "example.com" {
		t.Errorf("expected host 'example.com', got %q", c.Host)
	}
	if c.PathQuery != "/login" {
		t.Errorf("expected path '/login', got %q", c.PathQuery)
	}
}

func TestNormalize_ExplicitScheme(t *testing.T) {
	t.Parallel()
	c := urlx.Normalize("https://example.com/a")
	if !c.ExplicitScheme {
		t.Error("expected ExplicitScheme == true for https:// input")
	}
}

func TestNormalize_LowercasesHost(t *testing.T) {
	t.Parallel()
	c := urlx.Normalize("http://ExAmPlE.CoM/Path")
	if c.Host != "example.com" {
		t.Errorf("expected lower-cased host, got %q", c.Host)
	}
	if c.PathQuery != "/Path" {
		t.Errorf("expected path case preserved, got %q", c.PathQuery)
	}
}

func TestNormalize_BareRootCollapsesToEmpty(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in string
	}{
		{"http://example.com"},
		{"http://example.com/"},
		{"example.com"},
	}
	for _, tt := range tests {
		if c := urlx.Normalize(tt.in); c.PathQuery != "" {
			t.Errorf("Normalize(%q).PathQuery = %q, want empty", tt.in, c.PathQuery)
		}
	}
}

func TestNormalize_QueryIsAppended(t *testing.T) {
	t.Parallel()
	c := urlx.Normalize("http://example.com/search?q=1&x=2")
	if c.PathQuery != "/search?q=1&x=2" {
		t.Errorf("expected path+query concatenation, got %q", c.PathQuery)
	}
}

func TestNormalize_UserinfoIsNotPartOfHost(t *testing.T) {
	t.Parallel()
	c := urlx.Normalize("http://user@evil-paypal-login.com/verify")
	if c.Host != "evil-paypal-login.com" {
		t.Errorf("expected userinfo stripped from host, got %q", c.Host)
	}
}

func TestNormalize_IDNHostIsPunycoded(t *testing.T) {
	t.Parallel()
	c := urlx.Normalize("http://bücher.example/")
	if c.Host != "xn--bcher-kva.example" {
		t.Errorf("expected punycode host, got %q", c.Host)
	}
}

func TestNormalize_MalformedInputNeverPanics(t *testing.T) {
	t.Parallel()
	// url.Parse rejects control characters; Normalize must degrade to an
	// empty parse instead of failing.
	c := urlx.Normalize("http://bad\x7f.example/\x00")
	if c.Host != "" || c.PathQuery != "" {
		t.Errorf("expected empty host/path for unparseable input, got %+v", c)
	}
}

func TestHasExplicitScheme(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{"http://a.com", true},
		{"https://a.com", true},
		{"ftp://a.com", false},
		{"a.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := urlx.HasExplicitScheme(tt.in); got != tt.want {
			t.Errorf("HasExplicitScheme(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
