package stats

import (
	"fmt"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
	"github.com/puzzlecraft/cryptogram-go/internal/services/derangement"
)

// Service estimates generator performance over repeated runs
type Service struct {
	generator *derangement.Service
}

// New creates a new stats Service
func New(generator *derangement.Service) *Service {
	return &Service{
		generator: generator,
	}
}

// AverageAttempts runs the generator trials times and returns the arithmetic
// mean of the shuffle attempt counts. The mean converges to e ≈ 2.718 since
// roughly 1/e of uniform shuffles are derangements.
func (s *Service) AverageAttempts(trials int) (float64, error) {
	if trials < 1 {
		return 0, fmt.Errorf("%w: got %d", model.ErrInvalidTrials, trials)
	}

	total := 0
	for i := 0; i < trials; i++ {
		_, attempts, err := s.generator.Generate()
		if err != nil {
			return 0, err
		}
		total += attempts
	}

	return float64(total) / float64(trials), nil
}
