// Package dictionary provides the natural-language word list membership check.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Dictionary is a lowercase word membership set. Read-only after Load.
type Dictionary struct {
	words map[string]struct{}
}

// Load reads a word list file, one word per line, lowercasing every entry.
// A missing or unreadable file is not fatal to the overall analysis; callers
// log the error and continue with Empty().
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	return &Dictionary{words: words}, nil
}

// Empty returns a dictionary with no words.
func Empty() *Dictionary {
	return &Dictionary{words: make(map[string]struct{})}
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether the lowercase form of s is in the dictionary.
func (d *Dictionary) Contains(s string) bool {
	_, ok := d.words[strings.ToLower(s)]
	return ok
}

// Predictable returns the credentials whose lowercase form appears in the
// dictionary, sorted for deterministic reporting.
func (d *Dictionary) Predictable(credentials []string) []string {
	var predictable []string
	for _, c := range credentials {
		if d.Contains(c) {
			predictable = append(predictable, c)
		}
	}
	sort.Strings(predictable)
	return predictable
}
