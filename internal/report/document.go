package report

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/affinity/internal/affinity"
	"github.com/papapumpkin/affinity/internal/analyzer"
)

// Document is the machine-readable form of a Result, shared by the json and
// toml formats.
type Document struct {
	SubsetSize   int           `json:"subset_size" toml:"subset_size"`
	MatchSize    int           `json:"match_size" toml:"match_size"`
	Combinations int           `json:"combinations" toml:"combinations"`
	Histograms   HistogramsDoc `json:"histograms" toml:"histograms"`
	Matches      []MatchDoc    `json:"matches" toml:"matches"`
}

// HistogramsDoc holds one 13-bucket count list per relation kind.
type HistogramsDoc struct {
	EffectiveAgainst   []uint64 `json:"effective_against" toml:"effective_against"`
	IneffectiveAgainst []uint64 `json:"ineffective_against" toml:"ineffective_against"`
	ResilientTo        []uint64 `json:"resilient_to" toml:"resilient_to"`
	WeakTo             []uint64 `json:"weak_to" toml:"weak_to"`
}

// MatchDoc is a single reported subset with all four union sizes.
type MatchDoc struct {
	Members            []string `json:"members" toml:"members"`
	EffectiveAgainst   int      `json:"effective_against" toml:"effective_against"`
	IneffectiveAgainst int      `json:"ineffective_against" toml:"ineffective_against"`
	ResilientTo        int      `json:"resilient_to" toml:"resilient_to"`
	WeakTo             int      `json:"weak_to" toml:"weak_to"`
}

// NewDocument converts a Result. Matches are always rendered as a list,
// never null.
func NewDocument(r analyzer.Result) Document {
	doc := Document{
		SubsetSize:   r.SubsetSize,
		MatchSize:    r.MatchSize,
		Combinations: r.Combinations,
		Histograms: HistogramsDoc{
			EffectiveAgainst:   counts(r.Histograms[affinity.EffectiveAgainst]),
			IneffectiveAgainst: counts(r.Histograms[affinity.IneffectiveAgainst]),
			ResilientTo:        counts(r.Histograms[affinity.ResilientTo]),
			WeakTo:             counts(r.Histograms[affinity.WeakTo]),
		},
		Matches: make([]MatchDoc, len(r.Matches)),
	}
	for i, m := range r.Matches {
		doc.Matches[i] = MatchDoc{
			Members:            memberNames(m.Members),
			EffectiveAgainst:   m.Sizes[affinity.EffectiveAgainst],
			IneffectiveAgainst: m.Sizes[affinity.IneffectiveAgainst],
			ResilientTo:        m.Sizes[affinity.ResilientTo],
			WeakTo:             m.Sizes[affinity.WeakTo],
		}
	}
	return doc
}

func counts(h analyzer.Histogram) []uint64 {
	return append([]uint64(nil), h[:]...)
}

// JSONFormat renders the full result as one indented JSON document.
type JSONFormat struct{}

// WriteMatch is a no-op; matches are part of the summary document.
func (f *JSONFormat) WriteMatch(io.Writer, analyzer.Match) error { return nil }

// WriteSummary writes the result document.
func (f *JSONFormat) WriteSummary(w io.Writer, r analyzer.Result) error {
	data, err := json.MarshalIndent(NewDocument(r), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}
	return nil
}

// TOMLFormat renders the full result as one TOML document.
type TOMLFormat struct{}

// WriteMatch is a no-op; matches are part of the summary document.
func (f *TOMLFormat) WriteMatch(io.Writer, analyzer.Match) error { return nil }

// WriteSummary writes the result document.
func (f *TOMLFormat) WriteSummary(w io.Writer, r analyzer.Result) error {
	data, err := toml.Marshal(NewDocument(r))
	if err != nil {
		return fmt.Errorf("marshaling TOML report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing TOML report: %w", err)
	}
	return nil
}
