// Package storage resolves stored document paths and streams them from object storage.
package storage

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrMissingPath    = errors.New("fullPath is required")
	ErrInvalidPath    = errors.New("invalid document path")
	ErrNotConfigured  = errors.New("document storage is not configured")
	ErrObjectNotFound = errors.New("document not found")
	ErrUpstream       = errors.New("document storage request failed")
)

// ObjectKey reduces a stored value (object key or public URL) to the bucket key.
// URLs under publicBase lose that prefix; other URLs keep only their path.
func ObjectKey(fullPath, publicBase string) (string, error) {
	p := strings.TrimSpace(fullPath)
	if p == "" {
		return "", ErrMissingPath
	}

	if base := strings.TrimRight(strings.TrimSpace(publicBase), "/"); base != "" && strings.HasPrefix(p, base+"/") {
		p = strings.TrimPrefix(p, base+"/")
	} else if strings.Contains(p, "://") {
		u, err := url.Parse(p)
		if err != nil {
			return "", ErrInvalidPath
		}
		p = u.Path
	}

	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}
	p = strings.TrimLeft(p, "/")

	if p == "" {
		return "", ErrMissingPath
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	return p, nil
}
