package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mediadesk/caplint/internal/config"
)

var (
	cfgFile     string
	maxProblems int
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "caplint",
	Short: "Lint structured photo-caption documents",
	Long: `caplint checks caption documents: a headline, a byline and a base
keywords line, followed by repeated caption blocks (image tag, keywords,
VIRIN title, description). It flags malformed fields, keyword budget
overruns, title/date mismatches, doubled punctuation, and non-canonical
rank abbreviations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./.caplint.yaml or ~/.caplint.yaml)",
	)
	rootCmd.PersistentFlags().IntVar(
		&maxProblems, "max-problems", -1, "cap on reported problems per document (overrides config)",
	)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(lintCmd, watchCmd, rulesCmd, versionCmd)
}

// loadConfig merges the config file with flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if maxProblems >= 0 {
		cfg.MaxNumberOfProblems = maxProblems
	}
	return cfg, nil
}
