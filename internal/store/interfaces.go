// Package store provides the durable local cache used by the dashboard:
// a small key-value layer with a bbolt file backend for real runs and an
// in-memory backend for tests, plus the [Cache] envelope that serializes
// values to JSON and converts every storage failure into a logged cache
// miss so callers never have to handle persistence errors.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/kv_mock.go -package=mock

// KV is a minimal synchronous key-value store. Implementations must be
// safe for concurrent use.
type KV interface {
	// Get returns the raw value stored under key. The boolean reports
	// whether the key was present; absence is not an error.
	Get(key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Close releases the underlying resources.
	Close() error
}
