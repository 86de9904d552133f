package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and input paths",
	Long: `Validate loads the configuration file and runs preflight checks before
a classification run.

Checks performed:
  - Configuration field validation (workers, logging, report settings)
  - Combined corpus file existence
  - Dictionary file existence (warning only)
  - Table source directory and per-source availability

Example:
  credaudit validate --config credaudit.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}
	cmd.Printf("Configuration: OK\n")

	warnings := 0

	if _, err := os.Stat(cfg.Corpus.CombinedFile); err != nil {
		cmd.Printf("Corpus:        MISSING (%s) - run 'credaudit combine' first\n",
			cfg.Corpus.CombinedFile)
		warnings++
	} else {
		cmd.Printf("Corpus:        OK (%s)\n", cfg.Corpus.CombinedFile)
	}

	if _, err := os.Stat(cfg.Dictionary.Path); err != nil {
		cmd.Printf("Dictionary:    MISSING (%s) - predictability check will be disabled\n",
			cfg.Dictionary.Path)
		warnings++
	} else {
		cmd.Printf("Dictionary:    OK (%s)\n", cfg.Dictionary.Path)
	}

	sources, err := resolveSources(cfg)
	if err != nil {
		cmd.Printf("Tables:        MISSING (%s)\n", cfg.Tables.Directory)
		warnings++
	} else {
		available := 0
		for _, source := range sources {
			if _, err := os.Stat(source.Path); err == nil {
				available++
			}
		}
		cmd.Printf("Tables:        %d source(s), %d available\n", len(sources), available)
		if available < len(sources) {
			warnings++
		}
	}

	if warnings > 0 {
		cmd.Printf("\nValidation finished with %d warning(s)\n", warnings)
	} else {
		cmd.Printf("\nAll checks passed\n")
	}
	return nil
}
