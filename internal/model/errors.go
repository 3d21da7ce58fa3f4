package model

import "errors"

// Common errors used across the application
var (
	// Puzzle errors
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrInvalidMapping = errors.New("invalid letter mapping")

	// Generator errors
	ErrShuffleLimitExceeded = errors.New("shuffle attempt limit exceeded")

	// Statistics errors
	ErrInvalidTrials = errors.New("trials must be at least 1")
)
