package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// InputSource yields the phrase to encode
type InputSource interface {
	Phrase() (string, error)
}

// ArgsSource returns a phrase supplied as a command-line argument
type ArgsSource struct {
	phrase string
}

// NewArgsSource creates an ArgsSource for the given phrase
func NewArgsSource(phrase string) *ArgsSource {
	return &ArgsSource{phrase: phrase}
}

// Phrase returns the argument phrase
func (s *ArgsSource) Phrase() (string, error) {
	return s.phrase, nil
}

// PromptSource reads the phrase interactively from a reader. An empty or
// absent response is accepted and yields an empty phrase.
type PromptSource struct {
	in  io.Reader
	out io.Writer
}

// NewPromptSource creates a PromptSource reading from in and prompting on out
func NewPromptSource(in io.Reader, out io.Writer) *PromptSource {
	return &PromptSource{in: in, out: out}
}

// Phrase prompts for and reads a single line
func (s *PromptSource) Phrase() (string, error) {
	fmt.Fprint(s.out, "Enter a phrase to encode: ")

	line, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
