package linkscan_test

import (
	"testing"

	"linkscan"
)

func TestIsWebTarget(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		target string
		want   bool
	}{
		{"http://example.com", true},
		{"https://example.com/page", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"index.html", false},
		{"/var/www/index.html", false},
		{"ftp://example.com", false},
	}
	for _, tc := range testCases {
		got := linkscan.IsWebTarget(tc.target)
		if tc.want != got {
			t.Errorf("IsWebTarget(%q) = %v, want %v", tc.target, got, tc.want)
		}
	}
}

func TestIsValidURL(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		raw  string
		want bool
	}{
		{"http://example.com", true},
		{"https://example.com/a/b.html?q=1", true},
		{"http://", false},
		{"http:///path-without-host", false},
		{"://missing-scheme", false},
	}
	for _, tc := range testCases {
		got := linkscan.IsValidURL(tc.raw)
		if tc.want != got {
			t.Errorf("IsValidURL(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
