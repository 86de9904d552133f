package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/credaudit/internal/classifier"
	"github.com/dbsmedya/credaudit/internal/config"
	"github.com/dbsmedya/credaudit/internal/ingest"
	"github.com/dbsmedya/credaudit/internal/logger"
)

var classifyCorpus string

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify credentials against precomputed hash tables",
	Long: `Classify computes the legacy hash digest of every credential in the
combined corpus and tests it against each precomputed hash table, streaming
one table at a time.

Tables are processed in a fixed order (lexical by file name, or the explicit
tables.order list from configuration). The first table in that order that
contains a credential's digest wins; later matches are discarded.

Unavailable tables, malformed table lines and credentials that cannot be
encoded are skipped, counted and reported; only an empty corpus is fatal.

Example:
  credaudit classify --config credaudit.yaml
  credaudit classify --corpus combined_output.txt --workers 8`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyCorpus, "corpus", "",
		"Override combined corpus file from configuration")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	run, err := classifyCorpusFile(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	printClassification(cmd, run)
	return nil
}

// classifyCorpusFile loads the corpus, resolves the table sources and runs
// the classification engine with signal-based cancellation. On interrupt the
// partial result accumulated so far is returned.
func classifyCorpusFile(parent context.Context, cfg *config.Config, log *logger.Logger) (*classifier.RunResult, error) {
	corpusFile := cfg.Corpus.CombinedFile
	if classifyCorpus != "" {
		corpusFile = classifyCorpus
	}

	credentials, err := ingest.LoadCombined(corpusFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	set := classifier.NewCredentialSet(credentials)

	sources, err := resolveSources(cfg)
	if err != nil {
		return nil, err
	}

	runLog := log.WithFields(map[string]interface{}{
		"corpus":  corpusFile,
		"workers": cfg.Processing.Workers,
	})

	engine, err := classifier.NewEngine(set, sources, cfg.Processing.Workers, runLog)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle graceful shutdown. The relay exits with the run; signal.Stop
	// alone would leave it blocked on sigChan forever.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigChan:
			log.Warn("Received shutdown signal - stopping after in-flight table scans...")
			cancel()
		case <-done:
		}
	}()

	run, err := engine.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) && run != nil {
			log.Warnw("Classification interrupted - reporting partial result",
				"sources_scanned", run.Stats.SourcesScanned,
			)
			return run, nil
		}
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	return run, nil
}

// resolveSources builds the ordered table source list from configuration:
// the explicit tables.order list when present, lexical directory enumeration
// otherwise.
func resolveSources(cfg *config.Config) ([]classifier.TableSource, error) {
	if len(cfg.Tables.Order) > 0 {
		return classifier.OrderedSources(cfg.Tables.Directory, cfg.Tables.Order), nil
	}

	sources, err := classifier.DiscoverSources(cfg.Tables.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to discover table sources: %w", err)
	}
	return sources, nil
}

func printClassification(cmd *cobra.Command, run *classifier.RunResult) {
	cmd.Printf("\n=== Classification Complete ===\n")
	cmd.Printf("Duration:            %s\n", run.Duration)
	cmd.Printf("Cracked Credentials: %d\n", run.Result.Len())
	cmd.Printf("Sources Scanned:     %d\n", run.Stats.SourcesScanned)
	cmd.Printf("Skipped Sources:     %d\n", len(run.Stats.SkippedSources))
	cmd.Printf("Skipped Credentials: %d\n", run.Stats.SkippedCredentials)
	cmd.Printf("Skipped Table Lines: %d\n", run.Stats.SkippedLines)

	if run.Result.Len() > 0 {
		cmd.Printf("\nCracked by table:\n")
		run.Result.BySource(func(source string, count int) {
			cmd.Printf("  %s: %d\n", source, count)
		})
	}
	for _, name := range run.Stats.SkippedSources {
		cmd.Printf("\nWarning: source %q could not be opened\n", name)
	}
}
