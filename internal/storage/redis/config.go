package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// GameTTL bounds how long an abandoned game lingers; 0 disables expiry
	GameTTL time.Duration

	// DictionaryBatchSize caps the number of words sent per RPUSH
	DictionaryBatchSize int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:                 "redis://localhost:6379",
		PoolSize:            10,
		MinIdleConns:        2,
		GameTTL:             time.Hour,
		DictionaryBatchSize: 1000,
	}
}
