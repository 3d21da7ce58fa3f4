package model

import "fmt"

// Derangement maps each lowercase letter to an uppercase replacement such
// that no letter maps to its own uppercase form. Index i holds the
// replacement for letter 'a'+i.
type Derangement [AlphabetSize]byte

// Replacement returns the uppercase replacement for a lowercase letter.
// The second return is false if r is not a lowercase letter a-z.
func (d Derangement) Replacement(r rune) (rune, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return rune(d[r-'a']), true
}

// Inverse returns the mapping that undoes d: position i holds the uppercase
// form of the letter that d sends to 'A'+i. The inverse of a derangement is
// itself a derangement. Entries outside A-Z are skipped, so the inverse of a
// mapping that fails Validate may hold zero bytes at the unreached positions.
func (d Derangement) Inverse() Derangement {
	var inv Derangement
	for i, c := range d {
		if c < 'A' || c > 'Z' {
			continue
		}
		inv[c-'A'] = byte('A' + i)
	}
	return inv
}

// Validate checks that d is a bijection over the uppercase alphabet with no
// letter mapped to its own uppercase form.
func (d Derangement) Validate() error {
	var seen [AlphabetSize]bool
	for i, c := range d {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("%w: position %d holds %q", ErrInvalidMapping, i, c)
		}
		if seen[c-'A'] {
			return fmt.Errorf("%w: %q used more than once", ErrInvalidMapping, c)
		}
		seen[c-'A'] = true
		if int(c-'A') == i {
			return fmt.Errorf("%w: %q maps to itself", ErrInvalidMapping, c)
		}
	}
	return nil
}

// String renders the replacements in alphabet order, e.g. "QWERTY...".
func (d Derangement) String() string {
	return string(d[:])
}

// MarshalText encodes d as its 26-letter replacement string.
func (d Derangement) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a 26-letter replacement string and validates it.
func (d *Derangement) UnmarshalText(text []byte) error {
	if len(text) != AlphabetSize {
		return fmt.Errorf("%w: expected %d letters, got %d", ErrInvalidMapping, AlphabetSize, len(text))
	}
	var parsed Derangement
	copy(parsed[:], text)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*d = parsed
	return nil
}
