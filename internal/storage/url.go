package storage

import (
	"net/url"
	"path"
	"strings"
)

// URLMapper translates between storage keys (paths relative to the bucket
// root) and public URLs of the form {base}/{bucket}/{key}. The two
// directions are exact inverses for every key this service generates.
type URLMapper struct {
	base   string
	bucket string
}

// NewURLMapper normalizes base and bucket so that joining them with a key
// always yields exactly one slash at each boundary.
func NewURLMapper(base, bucket string) URLMapper {
	return URLMapper{
		base:   strings.TrimRight(base, "/"),
		bucket: strings.Trim(bucket, "/"),
	}
}

// PublicURL returns the browser-accessible URL for the given key.
// A value that is already a fully-qualified URL is returned unchanged, so
// applying PublicURL twice is safe.
func (m URLMapper) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if strings.Contains(key, "://") {
		return key
	}
	return m.base + "/" + m.bucket + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL is the inverse of PublicURL. Values that are not URLs are
// assumed to already be keys and are returned as-is. URLs that do not match
// the {base}/{bucket}/{key} shape fall back to their final path segment.
// Malformed input yields "", which callers treat as "nothing to delete".
func (m URLMapper) KeyFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		return strings.TrimLeft(raw, "/")
	}
	prefix := m.base + "/" + m.bucket + "/"
	if strings.HasPrefix(raw, prefix) {
		return raw[len(prefix):]
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	seg := path.Base(u.Path)
	if seg == "." || seg == "/" {
		return ""
	}
	return seg
}
