package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
	"github.com/puzzlecraft/cryptogram-go/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	created_at TEXT NOT NULL
);`

// Storage is a SQLite-backed implementation of the storage interface.
// Puzzles are stored as JSON documents keyed by ID.
type Storage struct {
	db *sql.DB
}

// New opens (creating if needed) a SQLite database at the given path
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Cryptogram) error {
	data, err := json.Marshal(puzzle)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO puzzles (id, data, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, created_at = excluded.created_at`,
		string(puzzle.ID), string(data), puzzle.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Cryptogram, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM puzzles WHERE id = ?`, string(id)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPuzzleNotFound
		}
		return nil, err
	}

	var puzzle model.Cryptogram
	if err := json.Unmarshal([]byte(data), &puzzle); err != nil {
		return nil, err
	}
	return &puzzle, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM puzzles WHERE id = ?`, string(id))
	return err
}

func (s *Storage) PuzzleExists(ctx context.Context, id model.PuzzleID) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM puzzles WHERE id = ?`, string(id)).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
