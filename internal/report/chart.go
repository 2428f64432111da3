package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/papapumpkin/affinity/internal/affinity"
)

// WriteChart renders the relation lists of every category for the given
// kinds. Plain output is a markdown table; styled output is a bordered
// lipgloss table.
func WriteChart(w io.Writer, t *affinity.Table, kinds []affinity.RelationKind, styled bool) error {
	headers := []string{"Category"}
	for _, k := range kinds {
		headers = append(headers, k.String())
	}

	rows := make([][]string, 0, affinity.NumCategories)
	for _, c := range affinity.All() {
		row := []string{c.String()}
		for _, k := range kinds {
			row = append(row, cell(t.RelationsOf(c, k)))
		}
		rows = append(rows, row)
	}

	if styled {
		_, err := fmt.Fprintln(w, styledChart(headers, rows))
		return err
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(headers)) + "\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func styledChart(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleMuted).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleLabel.Padding(0, 1)
			case col == 0:
				return styleCount.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		String()
}

func cell(cs []affinity.Category) string {
	if len(cs) == 0 {
		return "—"
	}
	return strings.Join(memberNames(cs), ", ")
}
