package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	workers   int
	noCharts  bool
)

var rootCmd = &cobra.Command{
	Use:   "credaudit",
	Short: "Credential Corpus Auditor",
	Long: `A CLI tool for auditing leaked credential corpora against precomputed
hash tables, dictionary word lists and structural strength heuristics.

Features:
  - Merges heterogeneous input files (txt, csv, xlsx) into a clean corpus
  - Streams precomputed hash tables one at a time, bounded memory
  - Deterministic first-table-wins attribution for cracked credentials
  - Length, strength and crack-rate statistics with charts`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "credaudit.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Processing overrides
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0,
		"Override number of concurrent table scanners")

	// Report overrides
	rootCmd.PersistentFlags().BoolVar(&noCharts, "no-charts", false,
		"Skip chart rendering in reports")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Workers   int
	NoCharts  bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Workers:   workers,
		NoCharts:  noCharts,
	}
}
