package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/credaudit/internal/config"
	"github.com/dbsmedya/credaudit/internal/ingest"
	"github.com/dbsmedya/credaudit/internal/logger"
)

var (
	combineInputDir string
	combineOutput   string
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Merge input files into a combined credential corpus",
	Long: `Combine converts all supported files (.txt, .csv, .xlsx) in the input
directory into a single flat corpus file: one credential per line, trimmed,
deduplicated, empty lines dropped.

Unsupported or unreadable files are skipped with a warning; the merge
continues with the remaining files.

Example:
  credaudit combine --config credaudit.yaml
  credaudit combine --input-dir leaks/ --output combined_output.txt`,
	RunE: runCombine,
}

func init() {
	combineCmd.Flags().StringVar(&combineInputDir, "input-dir", "",
		"Override input directory from configuration")
	combineCmd.Flags().StringVar(&combineOutput, "output", "",
		"Override combined corpus output file from configuration")

	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	inputDir := cfg.Corpus.InputDir
	if combineInputDir != "" {
		inputDir = combineInputDir
	}
	output := cfg.Corpus.CombinedFile
	if combineOutput != "" {
		output = combineOutput
	}

	log.Infow("Combining input files", "input_dir", inputDir, "output", output)

	result, err := ingest.Combine(inputDir, log)
	if err != nil {
		return fmt.Errorf("failed to combine input files: %w", err)
	}

	if len(result.Credentials) == 0 {
		return fmt.Errorf("no credentials found in %s", inputDir)
	}

	if err := ingest.WriteCombined(output, result.Credentials); err != nil {
		return fmt.Errorf("failed to write combined corpus: %w", err)
	}

	cmd.Printf("\n=== Combine Complete ===\n")
	cmd.Printf("Input Files:        %d\n", len(result.Files))
	cmd.Printf("Skipped Files:      %d\n", len(result.SkippedFiles))
	cmd.Printf("Unique Credentials: %d\n", len(result.Credentials))
	cmd.Printf("Output:             %s\n", output)

	return nil
}

// loadConfigAndLogger loads the configuration, applies CLI overrides and
// builds the logger. Shared by all subcommands.
func loadConfigAndLogger() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Workers, overrides.NoCharts)

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}
