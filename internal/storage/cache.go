// cache.go - Short-lived dedupe cache for scan results

package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ScanCache keeps recent scan results keyed by file digest, so re-uploading
// the same receipt within the TTL skips extraction and inference entirely.
type ScanCache struct {
	inner *gocache.Cache
}

// NewScanCache returns a cache with the given entry TTL. A zero or negative
// TTL returns nil, which callers treat as caching disabled.
func NewScanCache(ttl time.Duration) *ScanCache {
	if ttl <= 0 {
		return nil
	}
	return &ScanCache{inner: gocache.New(ttl, 2*ttl)}
}

// Get returns the cached value for a digest, if present.
func (c *ScanCache) Get(digest string) (interface{}, bool) {
	if c == nil {
		return nil, false
	}
	return c.inner.Get(digest)
}

// Put stores a value under a digest with the default TTL.
func (c *ScanCache) Put(digest string, value interface{}) {
	if c == nil {
		return
	}
	c.inner.SetDefault(digest, value)
}

// FileDigest computes the SHA-256 hex digest of a file's contents.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
