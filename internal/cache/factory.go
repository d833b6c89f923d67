package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Shuvikm/sonyliv-clone/internal/config"
)

// ProviderConfig holds the configuration needed to create a cache instance.
type ProviderConfig struct {
	// Size is the maximum number of entries.
	Size int

	// TTL is the time-to-live for every entry.
	TTL time.Duration

	// OnEvict is called when an entry is evicted. Not all providers support this.
	OnEvict EvictCallback

	// Logger receives error reports from cache operations. If nil, errors are dropped.
	Logger Logger

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// Group labels the cache_* metrics and namespaces Redis keys, so several
	// caches can share one Redis database. When non-empty the cache is wrapped
	// with metric instrumentation.
	Group string
}

// Provider is a constructor function that creates a Cache from config.
type Provider func(cfg ProviderConfig) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register registers a cache provider under the given name.
// It panics if the name is already registered or the provider is nil.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New creates a new Cache using the named provider. A non-empty cfg.Group
// turns on hit, miss, eviction and entry-count metrics for that group.
func New(name string, cfg ProviderConfig) (Cache, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	if cfg.Group == "" {
		return p(cfg)
	}

	group := cfg.Group
	original := cfg.OnEvict
	cfg.OnEvict = func(key string, value []byte) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if original != nil {
			original(key, value)
		}
	}

	inner, err := p(cfg)
	if err != nil {
		return nil, err
	}

	return newInstrumentedCache(inner, group), nil
}

// Open builds the cache for group from the application config. When the
// configured provider cannot be reached it logs the failure and returns an
// in-memory cache instead, so a missing Redis never stops the service.
func Open(cfg *config.Config, group string, size int, ttl time.Duration) (Cache, error) {
	logger := config.GetLogger()
	pc := ProviderConfig{
		Size:          size,
		TTL:           ttl,
		Logger:        NewLogger(logger),
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		Group:         group,
	}

	name := cfg.Cache.Provider
	if name == "" {
		name = "memory"
	}
	c, err := New(name, pc)
	if err == nil {
		logger.Info().Str("provider", name).Str("group", group).Int("size", size).Dur("ttl", ttl).Msg("Cache ready")
		return c, nil
	}
	if name == "memory" {
		return nil, err
	}

	logger.Warn().Err(err).Str("provider", name).Str("group", group).Msg("Cache provider unavailable, using memory")
	return New("memory", pc)
}

// RegisteredProviders returns a sorted list of registered provider names.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
