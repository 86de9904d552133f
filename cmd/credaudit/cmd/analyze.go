package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/credaudit/internal/classifier"
	"github.com/dbsmedya/credaudit/internal/dictionary"
	"github.com/dbsmedya/credaudit/internal/ingest"
	"github.com/dbsmedya/credaudit/internal/report"
)

// ResultsFileName is the calculated-values file written into the report
// output directory.
const ResultsFileName = "credential_calculated_values.txt"

var analyzeSkipTables bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full credential corpus analysis",
	Long: `Analyze runs every weakness signal over the combined corpus and writes
a report:

  1. Length distribution statistics (mean, median, mode, outliers)
  2. Dictionary predictability check
  3. Classification against precomputed hash tables
  4. Structural strength breakdown (Weak / Medium / Strong)

Results are written to the report output directory as a calculated-values
text file plus charts, and summarized on the terminal.

Example:
  credaudit analyze --config credaudit.yaml
  credaudit analyze --skip-tables --no-charts`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeSkipTables, "skip-tables", false,
		"Skip hash table classification, run only local signals")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Infow("Starting credential analysis", "corpus", cfg.Corpus.CombinedFile)

	credentials, err := ingest.LoadCombined(cfg.Corpus.CombinedFile)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	if len(credentials) == 0 {
		return fmt.Errorf("no credentials found in %s", cfg.Corpus.CombinedFile)
	}

	// Dictionary check. A missing word list degrades the analysis, it does
	// not abort it.
	dict, err := dictionary.Load(cfg.Dictionary.Path)
	if err != nil {
		log.Warnw("Dictionary unavailable - predictability check disabled",
			"path", cfg.Dictionary.Path,
			"error", err,
		)
		dict = dictionary.Empty()
	}
	predictable := dict.Predictable(credentials)

	// Hash table classification.
	var run *classifier.RunResult
	if !analyzeSkipTables {
		r, err := classifyCorpusFile(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		run = r
	} else {
		log.Info("Skipping hash table classification (--skip-tables)")
	}

	summary := report.Build(credentials, predictable, dict.Len(), run, cfg.Report.SampleSize)

	if err := os.MkdirAll(cfg.Report.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	resultsPath := filepath.Join(cfg.Report.OutputDir, ResultsFileName)
	if err := summary.WriteFile(resultsPath); err != nil {
		return err
	}
	log.Infow("Wrote calculated values", "path", resultsPath)

	if cfg.Report.Charts {
		if err := summary.WriteCharts(cfg.Report.OutputDir); err != nil {
			return err
		}
		log.Infow("Wrote charts", "dir", cfg.Report.OutputDir)
	}

	summary.Render(cmd.OutOrStdout())
	return nil
}
