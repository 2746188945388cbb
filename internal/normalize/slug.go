package normalize

import (
	"net/url"
	"strings"
)

// CleanID reduces a manga URL to its slug: query and fragment stripped,
// trailing slash stripped, last non-empty path segment kept. Idempotent:
// feeding a slug back in returns the same slug.
func CleanID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")

	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}

	return s
}

// AbsoluteURL resolves href against base. Already-absolute hrefs and
// unparseable input come back untouched.
func AbsoluteURL(base, href string) string {
	if href == "" {
		return base
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(base)
	if err != nil {
		return href
	}

	return b.ResolveReference(u).String()
}

// RelativeToDomain turns an absolute URL on the manga's own domain into a
// relative path. Absolute URLs on other hosts stay as they are.
func RelativeToDomain(domain, href string) string {
	h := strings.TrimSpace(href)
	if h == "" || strings.HasPrefix(h, "/") {
		return h
	}

	u, err := url.Parse(h)
	if err != nil || !u.IsAbs() {
		return h
	}

	d, err := url.Parse(domain)
	if err != nil || !strings.EqualFold(u.Host, d.Host) {
		return h
	}

	rel := u.Path
	if u.RawQuery != "" {
		rel += "?" + u.RawQuery
	}

	return rel
}
