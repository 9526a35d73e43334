package store

import (
	"encoding/json"

	"github.com/northstarhouse/strategyhub/internal/logger"
)

// Cache is the JSON envelope layer over a KV store. It never propagates
// storage or serialization failures: a failed read is a cache miss, a
// failed write is logged and dropped, and the in-memory state owned by the
// caller stays authoritative for the session either way.
type Cache struct {
	kv     KV
	logger *logger.Logger
}

func NewCache(kv KV, log *logger.Logger) *Cache {
	return &Cache{kv: kv, logger: log}
}

// Read unmarshals the value stored under key into out and reports whether
// a usable value was found. Absent keys, storage errors, and corrupt
// envelopes all return false; out is left untouched in those cases.
func (c *Cache) Read(key string, out any) bool {
	raw, ok, err := c.kv.Get(key)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to read cache")
		return false
	}
	if !ok {
		return false
	}

	if err = json.Unmarshal(raw, out); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("corrupt cache envelope, treating as miss")
		return false
	}
	return true
}

// Write marshals value and persists it under key. Failures are logged and
// silently dropped.
func (c *Cache) Write(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to encode cache value")
		return
	}
	if err = c.kv.Put(key, raw); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to write cache")
	}
}

// Clear removes the value stored under key. Failures are logged and
// dropped.
func (c *Cache) Clear(key string) {
	if err := c.kv.Delete(key); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to clear cache key")
	}
}
