// Package cache stores per-term social search results so repeated runs
// within the TTL do not re-hit the mirror endpoints.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// TermKey generates a cache key for a social media search term
func TermKey(term string) string {
	hash := sha256.Sum256([]byte(term))
	return "truthscan:v1:" + hex.EncodeToString(hash[:])
}
