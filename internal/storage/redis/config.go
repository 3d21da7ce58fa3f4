package redis

import "time"

// Config holds Redis connection and retention settings
type Config struct {
	// URL is the Redis connection URL (redis://...)
	URL string
	// PoolSize is the maximum number of connections
	PoolSize int
	// MinIdleConns is the minimum number of idle connections to keep open
	MinIdleConns int
	// PuzzleTTL is how long stored puzzles live; 0 keeps them forever
	PuzzleTTL time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		PuzzleTTL:    24 * time.Hour,
	}
}
