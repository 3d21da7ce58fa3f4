package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
	"github.com/puzzlecraft/cryptogram-go/internal/storage"
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

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Cryptogram) error {
	data, err := json.Marshal(puzzle)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, puzzleKey(puzzle.ID), data, s.cfg.PuzzleTTL).Err()
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Cryptogram, error) {
	data, err := s.client.Get(ctx, puzzleKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPuzzleNotFound
		}
		return nil, err
	}

	var puzzle model.Cryptogram
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return nil, err
	}
	return &puzzle, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	return s.client.Del(ctx, puzzleKey(id)).Err()
}

func (s *Storage) PuzzleExists(ctx context.Context, id model.PuzzleID) (bool, error) {
	exists, err := s.client.Exists(ctx, puzzleKey(id)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
