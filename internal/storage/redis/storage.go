package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.client.Del(ctx, gameKey(id)).Err()
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := dictionaryKey()

	// Check if dictionary exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	return s.client.LRange(ctx, key, 0, -1).Result()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	key := dictionaryKey()

	batch := s.cfg.DictionaryBatchSize
	if batch <= 0 {
		batch = len(words)
	}

	// Replace the existing list in one transaction
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	for start := 0; start < len(words); start += batch {
		end := min(start+batch, len(words))
		members := make([]interface{}, 0, end-start)
		for _, w := range words[start:end] {
			members = append(members, w)
		}
		pipe.RPush(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}
