package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/affinity/internal/affinity"
	"github.com/papapumpkin/affinity/internal/analyzer"
)

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // cyan, headings
	colorAccent  = lipgloss.Color("#FFD700") // gold, counts
	colorMuted   = lipgloss.Color("#8C8C8C") // gray, separators
)

var (
	styleLabel = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleCount = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// TextFormat writes one line per match followed by one spread line per
// relation kind:
//
//	[Nature, Air, Water, Light, Energy] - Weaknesses: 9
//	Effective against spread: [0, 0, 0, 0, 0, 0, 3, 21, 93, 210, 280, 141, 44]
type TextFormat struct {
	Styled bool
}

// WriteMatch writes the members of m and the size of its weak_to union.
func (f *TextFormat) WriteMatch(w io.Writer, m analyzer.Match) error {
	members := "[" + strings.Join(memberNames(m.Members), ", ") + "]"
	sep := " - "
	label := "Weaknesses:"
	count := fmt.Sprint(m.Weaknesses())
	if f.Styled {
		sep = styleMuted.Render(sep)
		label = styleLabel.Render(label)
		count = styleCount.Render(count)
	}
	_, err := fmt.Fprintf(w, "%s%s%s %s\n", members, sep, label, count)
	return err
}

// WriteSummary writes the four histograms in relation-kind order.
func (f *TextFormat) WriteSummary(w io.Writer, r analyzer.Result) error {
	for _, k := range affinity.Kinds() {
		label := k.Label() + " spread:"
		counts := formatCounts(r.Histograms[k])
		if f.Styled {
			label = styleLabel.Render(label)
			counts = styleCount.Render(counts)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", label, counts); err != nil {
			return err
		}
	}
	return nil
}

func formatCounts(h analyzer.Histogram) string {
	parts := make([]string, len(h))
	for i, v := range h {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
