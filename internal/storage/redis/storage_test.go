package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.PuzzleTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func testPuzzle(id model.PuzzleID) *model.Cryptogram {
	var mapping model.Derangement
	copy(mapping[:], "BCDEFGHIJKLMNOPQRSTUVWXYZA")
	return &model.Cryptogram{
		ID:        id,
		Phrase:    "hello, world!",
		Encoded:   "IFMMP, XPSME!",
		Alphabet:  model.Alphabet,
		Mapping:   mapping,
		Attempts:  4,
		CreatedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetPuzzle() {
	err := s.storage.SavePuzzle(s.ctx, testPuzzle("PUZZLE01"))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPuzzle(s.ctx, "PUZZLE01")
	s.Require().NoError(err)
	s.Equal("hello, world!", retrieved.Phrase)
	s.Equal("IFMMP, XPSME!", retrieved.Encoded)
	s.Equal("BCDEFGHIJKLMNOPQRSTUVWXYZA", retrieved.Mapping.String())
	s.Equal(4, retrieved.Attempts)
}

func (s *StorageSuite) TestGetPuzzleNotFound() {
	_, err := s.storage.GetPuzzle(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *StorageSuite) TestDeletePuzzle() {
	_ = s.storage.SavePuzzle(s.ctx, testPuzzle("PUZZLE01"))

	err := s.storage.DeletePuzzle(s.ctx, "PUZZLE01")
	s.Require().NoError(err)

	_, err = s.storage.GetPuzzle(s.ctx, "PUZZLE01")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *StorageSuite) TestPuzzleExists() {
	exists, err := s.storage.PuzzleExists(s.ctx, "PUZZLE01")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SavePuzzle(s.ctx, testPuzzle("PUZZLE01"))

	exists, err = s.storage.PuzzleExists(s.ctx, "PUZZLE01")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestPuzzleExpiresAfterTTL() {
	_ = s.storage.SavePuzzle(s.ctx, testPuzzle("PUZZLE01"))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetPuzzle(s.ctx, "PUZZLE01")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}
