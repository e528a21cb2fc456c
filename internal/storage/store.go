// Package storage implements the persistence layer: a generic
// key-value store of JSON-serialized values over a local SQLite
// database.
//
// The contract is deliberately lossy: Get reports false for "absent"
// and for "present but unreadable" alike, and Set/Remove/Clear report
// failure as a plain false. Underlying errors are logged and swallowed
// here; callers must treat a false Get as an empty collection and
// retry-ability as the only recovery. This mirrors the behavior of the
// datasets this application is compatible with, where a corrupt record
// degrades to "absent" rather than an error.
package storage

import "context"

// Store is the key-value persistence contract. Values must be
// JSON-serializable.
type Store interface {
	// Get unmarshals the value under key into v and reports whether a
	// readable value was found. false means absent or corrupt; callers
	// cannot tell the two apart.
	Get(ctx context.Context, key string, v any) bool

	// Set marshals v and writes it under key, reporting success.
	Set(ctx context.Context, key string, v any) bool

	// Remove deletes the value under key, reporting success. Removing
	// an absent key succeeds.
	Remove(ctx context.Context, key string) bool

	// Clear deletes every value, reporting success.
	Clear(ctx context.Context) bool
}
