package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/affinity/internal/affinity"
	"github.com/papapumpkin/affinity/internal/config"
	"github.com/papapumpkin/affinity/internal/report"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the affinity chart",
	Long: `Prints every category with its relation lists. Use --kind to limit the chart
to a single relation kind.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().StringP("kind", "k", "", "relation kind to show (default: all)")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	kinds := affinity.Kinds()
	if name, _ := cmd.Flags().GetString("kind"); name != "" {
		k, err := affinity.ParseRelationKind(name)
		if err != nil {
			return err
		}
		kinds = []affinity.RelationKind{k}
	}

	return report.WriteChart(cmd.OutOrStdout(), affinity.Default(), kinds, cfg.Styled)
}
