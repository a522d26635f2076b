package olc

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeURL converts a bare domain or URL into a canonical absolute URL.
// Input without a scheme gets https:// prepended. The operation is
// idempotent: normalizing an already-normalized URL returns it unchanged.
func NormalizeURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", Errorf(EINVALID, "no domain or URL provided")
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q", s)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "invalid URL %q", s)
	}
	return u.String(), nil
}

// CanonicalHost extracts the uniqueness key for a URL or bare domain:
// the lowercased host with the scheme, any "www." prefix, and any
// path/query stripped. Internationalized hostnames are converted to
// their punycode form so visually distinct spellings key identically.
func CanonicalHost(s string) string {
	normalized, err := NormalizeURL(s)
	if err != nil {
		return ""
	}
	u, err := url.Parse(normalized)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}
	return host
}
