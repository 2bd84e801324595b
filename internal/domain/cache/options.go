package cache

// Option applies a configuration option to the in-memory cache.
type Option func(*inMemoryCache)

// WithMaxSize bounds the number of cached results.
func WithMaxSize(size int) Option {
	return func(c *inMemoryCache) {
		if size > 0 {
			c.maxSize = size
		}
	}
}
