package puzzle

import (
	"context"

	"github.com/puzzlecraft/cryptogram-go/internal/dependencies/clock"
	"github.com/puzzlecraft/cryptogram-go/internal/dependencies/random"
	"github.com/puzzlecraft/cryptogram-go/internal/model"
	"github.com/puzzlecraft/cryptogram-go/internal/services/derangement"
	"github.com/puzzlecraft/cryptogram-go/internal/services/encoder"
	"github.com/puzzlecraft/cryptogram-go/internal/storage"
)

const (
	// PuzzleIDLength is the length of generated puzzle IDs
	PuzzleIDLength = 8
	// PuzzleIDAlphabet is the characters used in puzzle IDs (avoid confusing chars)
	PuzzleIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller creates, retrieves and deletes stored puzzles
type Controller struct {
	storage   storage.Storage
	generator *derangement.Service
	builder   *encoder.Service
	clock     clock.Clock
	random    random.Random
}

// NewController creates a new puzzle Controller
func NewController(
	storage storage.Storage,
	generator *derangement.Service,
	builder *encoder.Service,
	clock clock.Clock,
	random random.Random,
) *Controller {
	return &Controller{
		storage:   storage,
		generator: generator,
		builder:   builder,
		clock:     clock,
		random:    random,
	}
}

// CreatePuzzle generates a fresh mapping for the phrase, encodes it and
// stores the result under a new unique ID. An empty phrase is accepted and
// yields an empty encoded text.
func (c *Controller) CreatePuzzle(ctx context.Context, phrase string) (*model.Cryptogram, error) {
	mapping, attempts, err := c.generator.Generate()
	if err != nil {
		return nil, err
	}

	puzzle := c.builder.Build(phrase, mapping, attempts)

	// Generate unique puzzle ID
	var id model.PuzzleID
	for {
		id = model.PuzzleID(c.random.String(PuzzleIDLength, PuzzleIDAlphabet))
		exists, err := c.storage.PuzzleExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	puzzle.ID = id
	puzzle.CreatedAt = c.clock.Now()

	if err := c.storage.SavePuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	return puzzle, nil
}

// GetPuzzle retrieves a stored puzzle by ID
func (c *Controller) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Cryptogram, error) {
	return c.storage.GetPuzzle(ctx, id)
}

// DeletePuzzle removes a stored puzzle
func (c *Controller) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	return c.storage.DeletePuzzle(ctx, id)
}
