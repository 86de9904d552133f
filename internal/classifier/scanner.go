package classifier

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dbsmedya/credaudit/internal/logger"
	"github.com/dbsmedya/credaudit/internal/ntlm"
)

// scanBufferSize is the read buffer for one table source. Digest entries are
// 32 hex characters; a line that overflows this buffer is counted as one
// malformed entry and drained, the rest of the file is still processed.
const scanBufferSize = 64 * 1024

// Scanner streams one table source, builds a transient digest membership set
// and tests every credential against it. The membership set is released when
// Scan returns, so memory is bounded by one table at a time.
type Scanner struct {
	set     *CredentialSet
	digests *DigestMap
	log     *logger.Logger
}

// NewScanner creates a Scanner over a fixed credential set and its
// precomputed digest map. Both are read-only, so a single Scanner is safe to
// use from concurrent scans of different sources.
func NewScanner(set *CredentialSet, digests *DigestMap, log *logger.Logger) *Scanner {
	return &Scanner{
		set:     set,
		digests: digests,
		log:     log,
	}
}

// Scan reads one table source and returns the partial matches for it.
//
// A source that cannot be opened fails with *TableUnavailableError.
// Individual lines that are not well-formed digest keys are skipped and
// counted; the rest of the file is still processed.
func (s *Scanner) Scan(ctx context.Context, source TableSource) (*ScanResult, error) {
	started := time.Now()
	log := s.log.WithSource(source.Name)

	file, err := os.Open(source.Path)
	if err != nil {
		return nil, &TableUnavailableError{Source: source.Name, Path: source.Path, Err: err}
	}
	defer file.Close()

	result := &ScanResult{Source: source}

	// Build the membership set for this source.
	membership := make(map[string]struct{})
	reader := bufio.NewReaderSize(file, scanBufferSize)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		raw, isPrefix, err := reader.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &TableUnavailableError{Source: source.Name, Path: source.Path, Err: err}
		}
		result.Stats.LinesRead++

		if isPrefix {
			// The line overflows the buffer; no valid entry is that long.
			// Drain its remainder and skip it.
			for isPrefix && err == nil {
				_, isPrefix, err = reader.ReadLine()
			}
			result.Stats.MalformedLines++
			log.Debugw("Skipping oversized table entry", "line", result.Stats.LinesRead)
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, &TableUnavailableError{Source: source.Name, Path: source.Path, Err: err}
			}
			continue
		}

		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}
		if !ntlm.ValidKey(line) {
			result.Stats.MalformedLines++
			log.Debugw("Skipping malformed table entry", "line", result.Stats.LinesRead)
			continue
		}
		membership[ntlm.Normalize(line)] = struct{}{}
	}
	result.Stats.Entries = len(membership)

	// Test every credential digest against the membership set. Iterating the
	// sorted snapshot keeps the match order deterministic.
	for _, credential := range s.set.Sorted() {
		key, ok := s.digests.Key(credential)
		if !ok {
			continue
		}
		if _, hit := membership[key]; hit {
			result.Matches = append(result.Matches, credential)
		}
	}
	result.Stats.Matches = len(result.Matches)
	result.Stats.Duration = time.Since(started)

	log.Debugw("Table scan complete",
		"entries", result.Stats.Entries,
		"matches", result.Stats.Matches,
		"malformed_lines", result.Stats.MalformedLines,
		"duration", result.Stats.Duration,
	)

	return result, nil
}
