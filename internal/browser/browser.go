// Package browser opens a hashtag's search page on a platform in the
// system browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// tagURLs maps a platform to its hashtag search URL pattern.
var tagURLs = map[string]string{
	"instagram": "https://www.instagram.com/explore/tags/%s/",
	"twitter":   "https://twitter.com/hashtag/%s",
	"tiktok":    "https://www.tiktok.com/tag/%s",
	"facebook":  "https://www.facebook.com/hashtag/%s",
	"linkedin":  "https://www.linkedin.com/feed/hashtag/?keywords=%s",
	"pinterest": "https://www.pinterest.com/search/pins/?q=%%23%s",
}

// TagURL builds the hashtag search URL for a platform. Unknown platforms
// fall back to Instagram.
func TagURL(platform, hashtag string) string {
	tag := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hashtag), "#"))
	pattern, ok := tagURLs[strings.ToLower(platform)]
	if !ok {
		pattern = tagURLs["instagram"]
	}
	return fmt.Sprintf(pattern, url.PathEscape(tag))
}

// OpenTag opens the hashtag's search page on the given platform.
func OpenTag(platform, hashtag string) error {
	return Open(TagURL(platform, hashtag))
}

func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "linux":
		return exec.Command("xdg-open", rawURL).Start()
	case "windows":
		// Use rundll32 instead of cmd /c start to avoid shell interpretation
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
