package cli

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mcoot/hangbot/internal/factory"
	redisstorage "github.com/mcoot/hangbot/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	WordsPath   string
	StorageType string
	RedisURL    string
	Seed        uint64
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with defaults taken from the environment
func DefaultConfig() *Config {
	return &Config{
		WordsPath:   getEnvOrDefault("HANGBOT_WORDS", "data/words.txt"),
		StorageType: getEnvOrDefault("HANGBOT_STORAGE", factory.StorageTypeMemory),
		RedisURL:    getEnvOrDefault("REDIS_URL", redisstorage.DefaultConfig().URL),
		Seed:        getEnvUint("HANGBOT_SEED"),
		Output:      "text",
		Verbose:     false,
	}
}

// Logger builds the text logger written to w, at debug level when verbose
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig translates the CLI settings into application wiring options
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		DictionaryPath: c.WordsPath,
		Logger:         logger,
		StorageType:    c.StorageType,
		Seed:           c.Seed,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvUint(key string) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
