package ingest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dbsmedya/credaudit/internal/logger"
)

// FileStat records how one input file was handled.
type FileStat struct {
	Name   string
	Format string
	Lines  int // Candidate strings read before cleaning
}

// CombineResult holds the merged corpus and per-file accounting.
type CombineResult struct {
	Credentials  []string // Unique, trimmed, non-empty, sorted
	Files        []FileStat
	SkippedFiles []string // Unsupported or unreadable files
}

// Combine merges every supported file in dir into a deduplicated credential
// corpus. Unsupported and unreadable files are skipped with a warning; the
// merge continues with the remaining files.
func Combine(dir string, log *logger.Logger) (*CombineResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	result := &CombineResult{}
	seen := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)
		flog := log.WithFile(name)

		reader := ReaderFor(path)
		if reader == nil {
			flog.Warnw("Skipping unsupported file type")
			result.SkippedFiles = append(result.SkippedFiles, name)
			continue
		}

		lines, err := reader.Read(path)
		if err != nil {
			flog.Warnw("Skipping unreadable file", "error", err)
			result.SkippedFiles = append(result.SkippedFiles, name)
			continue
		}

		flog.Infow("Read input file",
			"format", reader.Format(),
			"candidates", len(lines),
		)
		result.Files = append(result.Files, FileStat{
			Name:   name,
			Format: reader.Format(),
			Lines:  len(lines),
		})

		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			seen[line] = struct{}{}
		}
	}

	result.Credentials = make([]string, 0, len(seen))
	for c := range seen {
		result.Credentials = append(result.Credentials, c)
	}
	sort.Strings(result.Credentials)

	log.Infow("Combined input files",
		"files", len(result.Files),
		"skipped_files", len(result.SkippedFiles),
		"unique_credentials", len(result.Credentials),
	)

	return result, nil
}

// WriteCombined writes the corpus to a flat file, one credential per line.
func WriteCombined(path string, credentials []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, c := range credentials {
		if _, err := w.WriteString(c + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// LoadCombined reads a previously combined corpus file, dropping empty lines.
func LoadCombined(path string) ([]string, error) {
	reader := PlainTextReader{}
	lines, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	var credentials []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		credentials = append(credentials, line)
	}
	return credentials, nil
}
