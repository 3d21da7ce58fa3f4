package derangement

import (
	"fmt"
	"log/slog"

	"github.com/puzzlecraft/cryptogram-go/internal/dependencies/random"
	"github.com/puzzlecraft/cryptogram-go/internal/model"
)

// maxShuffleAttempts bounds the reject-and-retry loop. Roughly 1/e of
// uniform shuffles are derangements, so a working Random source is accepted
// within a handful of attempts; hitting this cap means the source is broken.
const maxShuffleAttempts = 10000

// Service generates random letter mappings with no fixed points
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new derangement generator
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger,
	}
}

// Generate returns a uniformly random derangement of the alphabet along with
// the number of shuffles drawn, the accepted one included. Expected attempt
// count is e ≈ 2.72.
func (s *Service) Generate() (model.Derangement, int, error) {
	for attempts := 1; attempts <= maxShuffleAttempts; attempts++ {
		perm := s.random.Perm(model.AlphabetSize)
		if hasFixedPoint(perm) {
			continue
		}

		var mapping model.Derangement
		for i, p := range perm {
			mapping[i] = byte('A' + p)
		}

		s.logger.Debug("derangement accepted",
			slog.Int("attempts", attempts),
			slog.String("mapping", mapping.String()),
		)
		return mapping, attempts, nil
	}

	return model.Derangement{}, maxShuffleAttempts,
		fmt.Errorf("%w after %d shuffles", model.ErrShuffleLimitExceeded, maxShuffleAttempts)
}

// hasFixedPoint reports whether any position of the permutation maps to itself
func hasFixedPoint(perm []int) bool {
	for i, p := range perm {
		if p == i {
			return true
		}
	}
	return false
}
