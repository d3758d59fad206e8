package cache

import (
	"context"
	"time"
)

// TTLArtifact is the lifetime of cached render artifacts. Keys embed the
// graph hash, so entries never serve stale content; the TTL just bounds how
// long unused artifacts sit on disk.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores rendered artifacts keyed by string.
//
// Implementations return (nil, false, nil) for a miss; an error means the
// lookup itself failed. Expired or corrupt entries are treated as misses.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact. graphHash
	// identifies the graph content; opts captures every rendering input
	// that changes the output.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the rendering inputs that affect artifact bytes.
type ArtifactKeyOpts struct {
	// Format is the output format, e.g. "svg" or "dot".
	Format string
	// Rankdir is the Graphviz layout direction.
	Rankdir string
}

// DefaultKeyer generates hash-based artifact keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key of the form "artifact:<sha256>".
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts.Format, opts.Rankdir)
}
