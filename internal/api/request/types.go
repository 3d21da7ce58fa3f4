package request

// CreatePuzzle is the body for POST /api/v1/puzzles
type CreatePuzzle struct {
	Phrase string `json:"phrase"`
}
