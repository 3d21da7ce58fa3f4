package encoder

import (
	"strings"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
)

// Service builds cryptograms by applying a letter mapping to a phrase
type Service struct{}

// New creates a new encoder Service
func New() *Service {
	return &Service{}
}

// Build lowercases the phrase and substitutes every letter through the
// mapping in a single pass. Characters outside a-z pass through unchanged,
// so an empty or letter-free phrase yields its lowercased form untouched.
func (s *Service) Build(phrase string, mapping model.Derangement, attempts int) *model.Cryptogram {
	lowered := strings.ToLower(phrase)

	var encoded strings.Builder
	encoded.Grow(len(lowered))
	for _, r := range lowered {
		if replacement, ok := mapping.Replacement(r); ok {
			encoded.WriteRune(replacement)
			continue
		}
		encoded.WriteRune(r)
	}

	return &model.Cryptogram{
		Phrase:   lowered,
		Encoded:  encoded.String(),
		Alphabet: model.Alphabet,
		Mapping:  mapping,
		Attempts: attempts,
	}
}

// Decode maps encoded text back to the lowercased phrase through the inverse
// of the mapping. Characters outside A-Z pass through unchanged, as do
// letters the mapping never produces (possible only for mappings that fail
// Validate).
func (s *Service) Decode(encoded string, mapping model.Derangement) string {
	inverse := mapping.Inverse()

	var decoded strings.Builder
	decoded.Grow(len(encoded))
	for _, r := range encoded {
		if r >= 'A' && r <= 'Z' {
			if c := inverse[r-'A']; c != 0 {
				decoded.WriteRune(rune(c - 'A' + 'a'))
				continue
			}
		}
		decoded.WriteRune(r)
	}
	return decoded.String()
}
