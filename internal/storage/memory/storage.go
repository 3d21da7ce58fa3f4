package memory

import (
	"context"
	"sync"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
	"github.com/puzzlecraft/cryptogram-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	puzzles map[model.PuzzleID]*model.Cryptogram
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		puzzles: make(map[model.PuzzleID]*model.Cryptogram),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Cryptogram) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[puzzle.ID] = puzzle
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Cryptogram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzle, ok := s.puzzles[id]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return puzzle, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.puzzles, id)
	return nil
}

func (s *Storage) PuzzleExists(ctx context.Context, id model.PuzzleID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.puzzles[id]
	return ok, nil
}
