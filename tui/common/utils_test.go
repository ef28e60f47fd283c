package common

import (
	"testing"
	"time"
)

func TestDomain(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://www.example.com/post/1", "example.com"},
		{"https://blog.example.org/x", "blog.example.org"},
		{"", ""},
		{"not a url", ""},
	}
	for _, c := range cases {
		if got := Domain(c.in); got != c.want {
			t.Errorf("Domain(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsSafeExternalURL(t *testing.T) {
	if !IsSafeExternalURL("https://example.com") {
		t.Error("https should be safe")
	}
	if IsSafeExternalURL("file:///etc/passwd") {
		t.Error("file scheme must be rejected")
	}
	if IsSafeExternalURL("javascript:alert(1)") {
		t.Error("javascript scheme must be rejected")
	}
	if IsSafeExternalURL("") {
		t.Error("empty URL must be rejected")
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-1 * time.Minute), "1 minute ago"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-3 * time.Hour), "3 hours ago"},
		{now.Add(-48 * time.Hour), "2 days ago"},
		{time.Time{}, ""},
	}
	for _, c := range cases {
		if got := RelativeTime(c.t, now); got != c.want {
			t.Errorf("RelativeTime(%v) = %q, want %q", c.t, got, c.want)
		}
	}
}

func TestClipLines(t *testing.T) {
	if got := ClipLines("a\nb\nc", 2); got != "a\nb" {
		t.Errorf("ClipLines = %q", got)
	}
	if got := ClipLines("a", 3); got != "a" {
		t.Errorf("ClipLines short input = %q", got)
	}
	if got := ClipLines("a\nb", 0); got != "" {
		t.Errorf("ClipLines zero = %q", got)
	}
}

func TestClampToWidth(t *testing.T) {
	if got := ClampToWidth("abcdef", 3); got != "abc" {
		t.Errorf("ClampToWidth = %q", got)
	}
	if got := ClampToWidth("ab", 3); got != "ab" {
		t.Errorf("ClampToWidth short = %q", got)
	}
}
