// Package cache stores rendered graph artifacts between CLI runs.
// Artifacts are content-addressed: the key embeds a hash of the DOT
// source, so a stale entry can never be served for changed input.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache stores binary artifacts under string keys.
type Cache interface {
	// Get retrieves a value, reporting whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value; deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArtifactKey names a rendered artifact by output format and the hash of
// the DOT source it was rendered from.
func ArtifactKey(dotHash, format string) string {
	return fmt.Sprintf("artifact:%s:%s", format, dotHash)
}
