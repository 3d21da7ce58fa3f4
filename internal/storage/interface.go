package storage

import (
	"context"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
)

// Storage defines the interface for puzzle persistence
type Storage interface {
	SavePuzzle(ctx context.Context, puzzle *model.Cryptogram) error
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Cryptogram, error)
	DeletePuzzle(ctx context.Context, id model.PuzzleID) error
	PuzzleExists(ctx context.Context, id model.PuzzleID) (bool, error)
}
