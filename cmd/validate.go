package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/affinity/internal/affinity"
	"github.com/papapumpkin/affinity/internal/config"
)

// errTableInvalid is returned when the chart has error-severity issues.
var errTableInvalid = errors.New("affinity table has errors")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the affinity chart for data defects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return validateTable(cmd.OutOrStdout(), affinity.Default(), cfg.Verbose)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateTable(w io.Writer, table *affinity.Table, verbose bool) error {
	issues := table.Check()

	var errs, notes int
	for _, issue := range issues {
		switch issue.Severity {
		case affinity.SeverityError:
			errs++
			if _, err := fmt.Fprintf(w, "✗ %s\n", issue); err != nil {
				return err
			}
		case affinity.SeverityNote:
			notes++
			if !verbose {
				continue
			}
			if _, err := fmt.Fprintf(w, "· %s\n", issue); err != nil {
				return err
			}
		}
	}

	if errs > 0 {
		return fmt.Errorf("%w: %d error(s)", errTableInvalid, errs)
	}
	_, err := fmt.Fprintf(w, "✓ affinity table: %d categories, %d relation kinds, %d note(s)\n",
		affinity.NumCategories, affinity.NumKinds, notes)
	return err
}
