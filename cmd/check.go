package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/affinity/internal/affinity"
	"github.com/papapumpkin/affinity/internal/analyzer"
)

var checkCmd = &cobra.Command{
	Use:   "check <category>...",
	Short: "Show the union sizes of a single lineup",
	Long: `Unions the relation lists of the given categories and prints the size and
members of each union. Names are case-insensitive; each category may appear
once.`,
	Example: "  affinity check Nature Air Water Psi Ice",
	Args:    cobra.RangeArgs(1, affinity.NumCategories),
	RunE: func(cmd *cobra.Command, args []string) error {
		members, err := affinity.ParseMembers(args)
		if err != nil {
			return err
		}
		return writeLineup(cmd.OutOrStdout(), affinity.Default(), members)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// writeLineup prints one line per relation kind with the union size and
// its members.
func writeLineup(w io.Writer, table *affinity.Table, members []affinity.Category) error {
	unions := analyzer.UnionsOf(table, members)
	sizes := unions.Sizes()
	if _, err := fmt.Fprintf(w, "lineup: %v\n", members); err != nil {
		return err
	}
	for _, k := range affinity.Kinds() {
		if _, err := fmt.Fprintf(w, "  %-20s %2d  %s\n", k, sizes[k], unions[k]); err != nil {
			return err
		}
	}
	return nil
}
