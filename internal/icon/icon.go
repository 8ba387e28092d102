// Package icon maps shortcut URLs to display-icon URLs and labels.
package icon

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/minimtab/minim/internal/model"
)

// publicFaviconEndpoint is the favicon-by-domain fallback service.
const publicFaviconEndpoint = "https://www.google.com/s2/favicons"

// DefaultSize is the favicon pixel size used when none is configured.
const DefaultSize = 64

// Resolver resolves shortcut URLs to icon URLs. The zero value uses the
// public favicon-by-domain service at DefaultSize.
type Resolver struct {
	// HostTemplate is an optional host-provided favicon endpoint, a printf
	// template taking the escaped page URL (%s) and pixel size (%d).
	HostTemplate string

	// Size is the requested pixel size. Zero = DefaultSize.
	Size int
}

// Resolve maps a URL to a display-icon URL.
// Precedence: exact-hostname brand override, then the host favicon endpoint
// when configured, then the public favicon-by-domain service. Returns ""
// when no icon can be synthesized (render a placeholder).
func (r Resolver) Resolve(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	host := hostnameOf(rawURL)
	if host != "" {
		if override, ok := brandIcons[host]; ok {
			return override
		}
	}

	size := r.Size
	if size <= 0 {
		size = DefaultSize
	}

	// The host endpoint takes a full page URL, so it can still synthesize
	// something from an unparsable raw string.
	if r.HostTemplate != "" {
		return fmt.Sprintf(r.HostTemplate, url.QueryEscape(rawURL), size)
	}

	if host == "" {
		return ""
	}
	return fmt.Sprintf("%s?domain=%s&sz=%d", publicFaviconEndpoint, host, size)
}

// Label derives the display label for a shortcut: explicit title, else the
// URL hostname with a leading "www." stripped, else the literal "Link".
func Label(item model.Shortcut) string {
	if item.Title != "" {
		return item.Title
	}
	host := hostnameOf(item.URL)
	if host == "" {
		return "Link"
	}
	return strings.TrimPrefix(host, "www.")
}

// hostnameOf returns the lowercase hostname of a URL, or "" if the URL has
// no parsable host.
func hostnameOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
