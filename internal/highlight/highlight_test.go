package highlight_test

import (
	"strings"
	"testing"

	"github.com/raysh454/phishscope/internal/highlight"
)

func TestSegments_RoundTripsInput(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"http://192.168.1.5/login",
		"https://www.example.com",
		"http://user@evil-paypal-login.com/verify",
		"a=b&c=d",
		"",
	}
	for _, raw := range inputs {
		var b strings.Builder
		for _, s := range highlight.Segments(raw) {
			b.WriteString(s.Token)
		}
		if b.String() != raw {
			t.Errorf("Segments(%q) does not round-trip: got %q", raw, b.String())
		}
	}
}

func TestSegments_KeepsEmptyTokensBetweenDelimiters(t *testing.T) {
	t.Parallel()
	// "http://" splits into http : "" / "" / "" - adjacent delimiters
	// produce empty tokens so order and spacing survive.
	segs := highlight.Segments("http://")
	want := []string{"http", ":", "", "/", "", "/", ""}
	if len(segs) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(segs), segs)
	}
	for i, w := range want {
		if segs[i].Token != w {
			t.Errorf("token[%d] = %q, want %q", i, segs[i].Token, w)
		}
	}
}

func TestSegments_FlagsSuspiciousWords(t *testing.T) {
	t.Parallel()
	segs := highlight.Segments("http://user@evil-paypal-login.com/verify")

	suspicious := map[string]bool{}
	for _, s := range segs {
		if s.Suspicious {
			suspicious[s.Token] = true
		}
	}
	for _, want := range []string{"@", "login", "verify"} {
		if !suspicious[want] {
			t.Errorf("expected %q flagged suspicious, flagged set: %v", want, suspicious)
		}
	}
	if suspicious["paypal"] || suspicious["com"] {
		t.Errorf("unexpected tokens flagged: %v", suspicious)
	}
}

func TestSegments_WordMatchIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()
	segs := highlight.Segments("http://example.com/SecureLogin2")
	found := false
	for _, s := range segs {
		if s.Token == "SecureLogin2" && s.Suspicious {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'SecureLogin2' flagged, got %+v", segs)
	}
}

func TestSegments_CleanURLHasNoFlags(t *testing.T) {
	t.Parallel()
	for _, s := range highlight.Segments("https://www.example.com/about") {
		if s.Suspicious {
			t.Errorf("unexpected suspicious token %q", s.Token)
		}
	}
}

func TestSegments_EmptyInput(t *testing.T) {
	t.Parallel()
	segs := highlight.Segments("")
	if len(segs) != 1 || segs[0].Token != "" || segs[0].Suspicious {
		t.Errorf("expected single empty unflagged token, got %+v", segs)
	}
}
