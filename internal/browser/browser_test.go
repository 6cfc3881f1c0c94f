package browser

import (
	"strings"
	"testing"
)

func TestTagURL(t *testing.T) {
	tests := []struct {
		platform string
		hashtag  string
		want     string
	}{
		{"instagram", "#Brunch", "https://www.instagram.com/explore/tags/brunch/"},
		{"twitter", "tacos", "https://twitter.com/hashtag/tacos"},
		{"tiktok", "#fyp", "https://www.tiktok.com/tag/fyp"},
		{"linkedin", "#hiring", "https://www.linkedin.com/feed/hashtag/?keywords=hiring"},
		{"pinterest", "#decor", "https://www.pinterest.com/search/pins/?q=%23decor"},
		{"myspace", "#brunch", "https://www.instagram.com/explore/tags/brunch/"},
	}
	for _, tt := range tests {
		if got := TagURL(tt.platform, tt.hashtag); got != tt.want {
			t.Errorf("TagURL(%q, %q) = %q, want %q", tt.platform, tt.hashtag, got, tt.want)
		}
	}
}

func TestOpenRejectsNonHTTP(t *testing.T) {
	for _, raw := range []string{"ftp://example.com", "file:///etc/passwd", "javascript:alert(1)"} {
		err := Open(raw)
		if err == nil {
			t.Errorf("Open(%q) succeeded, want scheme error", raw)
			continue
		}
		if !strings.Contains(err.Error(), "scheme") {
			t.Errorf("Open(%q) error = %v, want scheme rejection", raw, err)
		}
	}
}
