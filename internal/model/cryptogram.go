package model

import "time"

// PuzzleID identifies a stored cryptogram
type PuzzleID string

// Cryptogram is one generated puzzle: the lowercased source phrase, its
// encoded form, and the mapping and shuffle attempt count that produced it
type Cryptogram struct {
	ID        PuzzleID    `json:"id,omitempty"`
	Phrase    string      `json:"phrase"`
	Encoded   string      `json:"encoded"`
	Alphabet  string      `json:"alphabet"`
	Mapping   Derangement `json:"mapping"`
	Attempts  int         `json:"attempts"`
	CreatedAt time.Time   `json:"created_at,omitzero"`
}
