package cache

// EvictCallback is called when an entry is evicted from the cache.
// Redis only reports capacity evictions, never TTL expiry.
type EvictCallback func(key string, value []byte)

// Cache is a byte-valued key store with LRU and TTL semantics. It backs the
// provider response cache and the session store.
type Cache interface {
	// Get returns the value and true on a hit. A hit refreshes the entry's LRU position.
	Get(key string) ([]byte, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte)

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)

	// Contains reports whether key is present without touching LRU order.
	Contains(key string) bool

	// Len returns the number of live entries.
	Len() int

	// Close releases connections. A no-op for the memory provider.
	Close() error
}
