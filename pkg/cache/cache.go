// Package cache stores solved networks and rendered artifacts by content hash.
//
// # Overview
//
// Solving is cheap for small nets but not for large ones, and rendering a
// topology diagram through Graphviz is never free. The [Cache] interface lets
// the pipeline skip both when the same problem is seen again:
//
//   - [FileCache] keeps entries under the user's cache directory (CLI)
//   - [RedisCache] shares entries between server replicas
//   - [NullCache] disables caching
//
// # Keys
//
// A [Keyer] turns a problem hash plus the options that influence the result
// into a cache key. Keys for solutions and artifacts live in separate
// namespaces, and [NewScopedKeyer] adds a prefix for isolation between
// tenants or tool versions.
//
// # Failure Model
//
// Cache errors are never fatal to a solve. Backends return errors so callers
// can log them, and the pipeline then continues as on a miss.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	// SolutionTTL is how long a solved network stays cached.
	SolutionTTL = 7 * 24 * time.Hour

	// ArtifactTTL is how long a rendered artifact stays cached.
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. hit is false on a miss or an expired
	// entry; err is reserved for backend failures.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// SolveKey returns the key of a solution.
	SolveKey(problemHash string, opts SolveKeyOpts) string

	// ArtifactKey returns the key of one rendered artifact of a solution.
	ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string
}

// SolveKeyOpts holds the solve options that change the result.
type SolveKeyOpts struct {
	Tolerance float64 `json:"tolerance"`
	Method    string  `json:"method"`
}

// ArtifactKeyOpts holds the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Plane     string  `json:"plane,omitempty"`
	Width     float64 `json:"width,omitempty"`
	HideInput bool    `json:"hide_input,omitempty"`
	Detailed  bool    `json:"detailed,omitempty"`
}

// DefaultKeyer builds unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SolveKey implements Keyer.
func (DefaultKeyer) SolveKey(problemHash string, opts SolveKeyOpts) string {
	return hashKey("solve", problemHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", solutionHash, opts)
}
