// Package classifier provides the credential classification engine: it tests
// every credential in a deduplicated set against one or more precomputed hash
// table sources and attributes each cracked credential to the first source, in
// a fixed processing order, that contained its digest.
package classifier

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrEmptyCredentialSet is returned when a classification run is started with
// no credentials. This is the only fatal input condition; it is reported
// before any table source is opened.
var ErrEmptyCredentialSet = errors.New("credential set is empty: nothing to classify")

// TableUnavailableError indicates a table source that could not be opened.
// The source is skipped and the run continues with the remaining sources.
type TableUnavailableError struct {
	Source string
	Path   string
	Err    error
}

func (e *TableUnavailableError) Error() string {
	return fmt.Sprintf("table source %q unavailable at %s: %v", e.Source, e.Path, e.Err)
}

func (e *TableUnavailableError) Unwrap() error {
	return e.Err
}

// TableSource identifies one precomputed hash table file. Name is the
// human-readable identifier used in the classification result (the base file
// name); Path is where the digest entries are read from.
type TableSource struct {
	Name string
	Path string
}

// CredentialSet is the deduplicated, trimmed collection of candidate strings.
// It is built once before classification and is read-only afterwards, so it
// may be shared across concurrent scanners without locking.
type CredentialSet struct {
	values map[string]struct{}
	sorted []string
}

// NewCredentialSet builds a CredentialSet from raw lines. Values are
// whitespace-trimmed; empty strings and duplicates are dropped.
func NewCredentialSet(credentials []string) *CredentialSet {
	values := make(map[string]struct{}, len(credentials))
	for _, c := range credentials {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		values[c] = struct{}{}
	}

	sorted := make([]string, 0, len(values))
	for c := range values {
		sorted = append(sorted, c)
	}
	sort.Strings(sorted)

	return &CredentialSet{values: values, sorted: sorted}
}

// Len returns the number of unique credentials in the set.
func (s *CredentialSet) Len() int {
	return len(s.values)
}

// Contains reports whether the set holds the given credential.
func (s *CredentialSet) Contains(credential string) bool {
	_, ok := s.values[credential]
	return ok
}

// Sorted returns the credentials in lexical order. The returned slice is the
// set's frozen snapshot and must not be modified.
func (s *CredentialSet) Sorted() []string {
	return s.sorted
}

// ScanStats contains statistics about scanning a single table source.
type ScanStats struct {
	LinesRead      int64         // Total lines read from the source file
	MalformedLines int64         // Lines skipped because they were not valid digest keys
	Entries        int           // Distinct digest entries in the membership set
	Matches        int           // Credentials whose digest was found in this source
	Duration       time.Duration // Time taken for the scan
}

// ScanResult holds the partial matches produced by scanning one table source.
type ScanResult struct {
	Source  TableSource
	Matches []string // Matched credentials, in the set's lexical order
	Stats   ScanStats
}

// RunStats contains the skip accounting for a full classification run.
// Partial failures are reported here, never silently dropped.
type RunStats struct {
	SourcesScanned     int
	SkippedSources     []string // Identifiers of sources that could not be opened
	SkippedCredentials int      // Credentials dropped due to encoding failures
	SkippedLines       int64    // Malformed table lines skipped across all sources
}

// RunResult is the outcome of a classification run: the final attribution
// mapping plus timing and skip statistics.
type RunResult struct {
	Result      *Result
	Stats       RunStats
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
}
