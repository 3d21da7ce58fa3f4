package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/puzzlecraft/cryptogram-go/internal/dependencies/clock"
	"github.com/puzzlecraft/cryptogram-go/internal/dependencies/random"
	"github.com/puzzlecraft/cryptogram-go/internal/services/derangement"
	"github.com/puzzlecraft/cryptogram-go/internal/services/encoder"
	"github.com/puzzlecraft/cryptogram-go/internal/services/puzzle"
	"github.com/puzzlecraft/cryptogram-go/internal/services/stats"
	"github.com/puzzlecraft/cryptogram-go/internal/storage"
	"github.com/puzzlecraft/cryptogram-go/internal/storage/memory"
	redisstorage "github.com/puzzlecraft/cryptogram-go/internal/storage/redis"
	"github.com/puzzlecraft/cryptogram-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DerangementService *derangement.Service
	EncoderService     *encoder.Service
	StatsService       *stats.Service
	PuzzleController   *puzzle.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	generator := derangement.New(rnd, logger)
	builder := encoder.New()
	statsService := stats.New(generator)
	puzzleController := puzzle.NewController(store, generator, builder, clk, rnd)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		DerangementService: generator,
		EncoderService:     builder,
		StatsService:       statsService,
		PuzzleController:   puzzleController,
	}
}
