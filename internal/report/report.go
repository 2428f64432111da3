// Package report renders analysis results. The text format streams matches
// as they are found and mirrors the classic console layout; the json and
// toml formats buffer everything into a single document.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/affinity/internal/affinity"
	"github.com/papapumpkin/affinity/internal/analyzer"
)

// ErrUnknownFormat is returned by ByName for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Format writes analysis output.
type Format interface {
	// WriteMatch is called once per match, in generation order, while the
	// analysis is still running. Buffered formats ignore it.
	WriteMatch(w io.Writer, m analyzer.Match) error

	// WriteSummary is called once after the analysis finishes.
	WriteSummary(w io.Writer, r analyzer.Result) error
}

// Options tunes a format.
type Options struct {
	// Styled enables terminal styling in the text format.
	Styled bool
}

// ByName returns the Format implementation for the given name.
// Supported names: text, json, toml.
func ByName(name string, opts Options) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return &TextFormat{Styled: opts.Styled}, nil
	case "json":
		return &JSONFormat{}, nil
	case "toml":
		return &TOMLFormat{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Names returns the list of all supported format names.
func Names() []string {
	return []string{"text", "json", "toml"}
}

// memberNames renders categories by name, preserving order.
func memberNames(cs []affinity.Category) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
