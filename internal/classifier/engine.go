package classifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dbsmedya/credaudit/internal/logger"
)

// Engine coordinates a classification run: it computes the digest map once,
// scans every table source with a bounded worker pool, and folds the partial
// matches through a single ordered aggregation step.
//
// Sources may be scanned in parallel, but folding always happens sequentially
// in the fixed source order, so the final result is identical to a strictly
// sequential run.
type Engine struct {
	set     *CredentialSet
	sources []TableSource
	workers int
	log     *logger.Logger
}

// NewEngine creates a classification engine over a credential set and an
// ordered list of table sources. workers bounds the number of sources scanned
// concurrently; 1 means strictly sequential scanning.
func NewEngine(set *CredentialSet, sources []TableSource, workers int, log *logger.Logger) (*Engine, error) {
	if set == nil {
		return nil, fmt.Errorf("credential set is nil")
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", workers)
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &Engine{
		set:     set,
		sources: sources,
		workers: workers,
		log:     log,
	}, nil
}

// Run executes the classification pass.
//
// An empty credential set fails with ErrEmptyCredentialSet before any source
// is opened. Unavailable sources and malformed lines are skipped, counted in
// the run stats and never abort the run.
//
// Cancellation stops launching further scans; sources that completed before
// the cancellation are still folded in order, so the returned result is a
// valid partial result. In that case Run returns the result together with the
// context's error.
func (e *Engine) Run(ctx context.Context) (*RunResult, error) {
	if e.set.Len() == 0 {
		return nil, ErrEmptyCredentialSet
	}

	run := &RunResult{StartedAt: time.Now()}

	e.log.Infow("Starting classification run",
		"credentials", e.set.Len(),
		"sources", len(e.sources),
		"workers", e.workers,
	)

	// Digest every credential once; scanning N sources must not cost N
	// hashing passes.
	digests := BuildDigestMap(e.set, e.log)
	run.Stats.SkippedCredentials = digests.Skipped()
	if digests.Skipped() > 0 {
		e.log.Warnw("Some credentials could not be digested",
			"skipped", digests.Skipped(),
		)
	}

	scanner := NewScanner(e.set, digests, e.log)

	// Scan sources with a bounded pool. Each scan writes into its own slot;
	// the slots are folded sequentially afterwards so parallelism never
	// affects the tie-break.
	scans := make([]*ScanResult, len(e.sources))
	scanErrs := make([]error, len(e.sources))

	var g errgroup.Group
	g.SetLimit(e.workers)

	cancelled := false
	for i, source := range e.sources {
		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		if cancelled {
			break
		}

		g.Go(func() error {
			res, err := scanner.Scan(ctx, source)
			if err != nil {
				scanErrs[i] = err
				return nil
			}
			scans[i] = res
			return nil
		})
	}
	g.Wait()

	// Ordered aggregation: single writer, fixed source order, first wins.
	agg := NewAggregator()
	for i, source := range e.sources {
		switch {
		case scans[i] != nil:
			agg.Fold(scans[i])
			run.Stats.SourcesScanned++
			run.Stats.SkippedLines += scans[i].Stats.MalformedLines
		case scanErrs[i] != nil:
			var unavailable *TableUnavailableError
			if errors.As(scanErrs[i], &unavailable) {
				e.log.Warnw("Skipping unavailable table source",
					"source", source.Name,
					"error", unavailable.Err,
				)
				run.Stats.SkippedSources = append(run.Stats.SkippedSources, source.Name)
			}
			// Scans aborted by cancellation are neither scanned nor skipped.
		}
	}

	run.Result = agg.Result()
	run.CompletedAt = time.Now()
	run.Duration = run.CompletedAt.Sub(run.StartedAt)

	e.log.Infow("Classification run complete",
		"cracked", run.Result.Len(),
		"sources_scanned", run.Stats.SourcesScanned,
		"skipped_sources", len(run.Stats.SkippedSources),
		"skipped_credentials", run.Stats.SkippedCredentials,
		"skipped_lines", run.Stats.SkippedLines,
		"duration", run.Duration,
	)

	if cancelled {
		return run, ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		// Cancellation raced the last scans; the folded prefix is still valid.
		return run, err
	}
	return run, nil
}

// Sources returns the table sources in their fixed processing order.
func (e *Engine) Sources() []TableSource {
	return e.sources
}
