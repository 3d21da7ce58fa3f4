package redis

import (
	"fmt"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
)

const keyPrefix = "cryptogram"

func puzzleKey(id model.PuzzleID) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, id)
}
