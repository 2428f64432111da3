package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "affinity",
	Short: "Coverage analysis of five-member affinity lineups",
	Long: `Affinity enumerates every five-member subset of the twelve-category affinity
chart, unions each subset's relation lists, and reports how the union sizes
are distributed. Without a subcommand it runs the analysis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .affinity.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("styled", false, "style terminal output")

	addAnalyzeFlags(rootCmd)
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".affinity")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("styled", flags.Lookup("styled"))

	viper.SetEnvPrefix("AFFINITY")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
