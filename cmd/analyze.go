package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/affinity/internal/affinity"
	"github.com/papapumpkin/affinity/internal/analyzer"
	"github.com/papapumpkin/affinity/internal/config"
	"github.com/papapumpkin/affinity/internal/logging"
	"github.com/papapumpkin/affinity/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Tally union sizes over every five-member subset",
	Long: `Enumerates all C(12,5) = 792 five-member subsets in canonical order. Subsets
whose effective_against union has exactly --match-size members are printed as
they are found, followed by one histogram per relation kind.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	addAnalyzeFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// addAnalyzeFlags registers the analysis flags on c. Both the root command
// and analyze accept them; they are bound to viper when the command runs.
func addAnalyzeFlags(c *cobra.Command) {
	c.Flags().String("format", "text", "output format: text, json, toml")
	c.Flags().Int("match-size", analyzer.DefaultMatchSize, "effective_against union size to report")
	c.Flags().Bool("no-matches", false, "suppress matching subsets, print histograms only")
}

func bindAnalyzeFlags(c *cobra.Command) error {
	for key, flag := range map[string]string{
		"format":     "format",
		"match_size": "match-size",
		"no_matches": "no-matches",
	} {
		if err := viper.BindPFlag(key, c.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if err := bindAnalyzeFlags(cmd); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	format, err := report.ByName(cfg.Format, report.Options{Styled: cfg.Styled})
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

	return analyze(cmd.OutOrStdout(), logger, affinity.Default(), cfg, format)
}

// analyze runs the enumeration, streaming matches to w through f as they
// are found, then writes the summary.
func analyze(w io.Writer, logger *slog.Logger, table *affinity.Table, cfg config.Config, f report.Format) error {
	logger.Debug("starting analysis",
		"categories", affinity.NumCategories,
		"subset_size", analyzer.SubsetSize,
		"match_size", cfg.MatchSize,
		"format", cfg.Format)
	start := time.Now()

	var writeErr error
	opts := analyzer.Options{MatchSize: cfg.MatchSize}
	if !cfg.NoMatches {
		opts.OnMatch = func(m analyzer.Match) {
			if writeErr == nil {
				writeErr = f.WriteMatch(w, m)
			}
		}
	}

	res := analyzer.Run(table, opts)
	if writeErr != nil {
		return fmt.Errorf("writing match: %w", writeErr)
	}
	logger.Debug("analysis complete",
		"combinations", res.Combinations,
		"matches", len(res.Matches),
		"elapsed", time.Since(start))

	if cfg.NoMatches {
		res.Matches = nil
	}
	if err := f.WriteSummary(w, res); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
