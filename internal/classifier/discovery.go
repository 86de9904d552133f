package classifier

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DiscoverSources enumerates the table source files in a directory. Regular
// files only; subdirectories are ignored. The returned sources are ordered
// lexically by file name, which is the documented fixed processing order.
func DiscoverSources(dir string) ([]TableSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read table directory %s: %w", dir, err)
	}

	var sources []TableSource
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		sources = append(sources, TableSource{
			Name: name,
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})

	return sources, nil
}

// OrderedSources builds the source list from an explicit file-name order.
// The caller-specified order is preserved verbatim; files are resolved
// relative to dir. Files that do not exist are still listed, so the scan
// reports them as unavailable rather than silently dropping them.
func OrderedSources(dir string, order []string) []TableSource {
	sources := make([]TableSource, 0, len(order))
	for _, name := range order {
		sources = append(sources, TableSource{
			Name: name,
			Path: filepath.Join(dir, name),
		})
	}
	return sources
}
