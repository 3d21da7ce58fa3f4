package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// PrintCryptogram outputs a generated puzzle
func (o *Output) PrintCryptogram(cg *model.Cryptogram, showMapping, showAttempts bool) {
	if o.format == "json" {
		o.printJSON(cg)
		return
	}

	fmt.Fprintf(o.w, "Encoded: %s\n", cg.Encoded)
	if cg.ID != "" {
		fmt.Fprintf(o.w, "ID: %s\n", cg.ID)
	}
	if showMapping {
		fmt.Fprintf(o.w, "Mapping: %s -> %s\n", model.Alphabet, cg.Mapping)
	}
	if showAttempts {
		fmt.Fprintf(o.w, "Attempts: %d\n", cg.Attempts)
	}
}

// PrintStats outputs a statistics run
func (o *Output) PrintStats(result StatsResult) {
	if o.format == "json" {
		o.printJSON(result)
		return
	}

	fmt.Fprintf(o.w, "Trials: %d\n", result.Trials)
	fmt.Fprintf(o.w, "Average attempts: %.3f\n", result.Average)
}

// PrintHealth outputs a server health check result
func (o *Output) PrintHealth(result HealthResult) {
	if o.format == "json" {
		o.printJSON(result)
		return
	}

	fmt.Fprintf(o.w, "Status: %s\n", result.Status)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
		return
	}

	fmt.Fprintln(o.w, msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}
