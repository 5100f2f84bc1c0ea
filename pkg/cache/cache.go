// Package cache provides a small keyed byte cache used by the CLI to avoid
// re-rasterizing diagrams whose input tree, format, and style have not
// changed. Rendering is deterministic, so cached artifacts never go stale on
// their own; TTLs exist only to bound disk usage.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key was
	// present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration; a negative ttl
	// stores the entry already expired.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey derives the cache key for a rendered artifact from the digest
// of the input tree, the output format, and the options that shaped the
// rendering.
func ArtifactKey(treeDigest, format string, opts any) string {
	return hashKey("artifact", treeDigest, format, opts)
}
