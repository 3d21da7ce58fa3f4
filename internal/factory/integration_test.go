package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TestDefaultsToMemoryStorage() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NotNil(app.Storage)
	s.NotNil(app.PuzzleController)
}

func (s *IntegrationSuite) TestRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "cassandra"})
	s.Error(err)
}

func (s *IntegrationSuite) TestRedisRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *IntegrationSuite) TestSQLiteRequiresPath() {
	_, err := New(Config{StorageType: StorageTypeSQLite})
	s.Error(err)
}

// shiftPerm is the cyclic shift permutation: a→B, b→C, ..., z→A
func shiftPerm() []int {
	perm := make([]int, model.AlphabetSize)
	for i := range perm {
		perm[i] = (i + 1) % model.AlphabetSize
	}
	return perm
}

func (s *IntegrationSuite) TestMockedPipelineIsDeterministic() {
	app := NewTestApp()
	app.MockRandom.QueuePerm(shiftPerm())
	app.MockRandom.QueueString("PUZZLE01")

	created, err := app.PuzzleController.CreatePuzzle(s.ctx, "Hello")
	s.Require().NoError(err)

	s.Equal(model.PuzzleID("PUZZLE01"), created.ID)
	s.Equal("IFMMP", created.Encoded)
	s.Equal(1, created.Attempts)
	s.Equal(app.MockClock.CurrentTime, created.CreatedAt)

	// The mock clock pins CreatedAt across a later fetch
	app.MockClock.Advance(time.Hour)
	fetched, err := app.PuzzleController.GetPuzzle(s.ctx, "PUZZLE01")
	s.Require().NoError(err)
	s.Equal(created.CreatedAt, fetched.CreatedAt)
}

func (s *IntegrationSuite) TestFullPuzzlePipeline() {
	app, err := New(Config{})
	s.Require().NoError(err)

	created, err := app.PuzzleController.CreatePuzzle(s.ctx, "The Quick Brown Fox!")
	s.Require().NoError(err)

	s.NotEmpty(created.ID)
	s.Equal("the quick brown fox!", created.Phrase)
	s.NoError(created.Mapping.Validate())
	s.GreaterOrEqual(created.Attempts, 1)

	// Stored copy round-trips back to the lowered phrase
	fetched, err := app.PuzzleController.GetPuzzle(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Phrase, app.EncoderService.Decode(fetched.Encoded, fetched.Mapping))
}

func (s *IntegrationSuite) TestSQLiteBackedPipeline() {
	app, err := New(Config{
		StorageType: StorageTypeSQLite,
		SQLitePath:  s.T().TempDir() + "/puzzles.db",
	})
	s.Require().NoError(err)

	created, err := app.PuzzleController.CreatePuzzle(s.ctx, "hello")
	s.Require().NoError(err)

	fetched, err := app.PuzzleController.GetPuzzle(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Encoded, fetched.Encoded)
}
