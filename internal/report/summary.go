package report

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/dbsmedya/credaudit/internal/classifier"
	"github.com/dbsmedya/credaudit/internal/strength"
)

// Summary is the assembled analysis output, ready for rendering.
type Summary struct {
	TotalCredentials int
	Lengths          LengthStats
	RawLengths       []int
	Predictable      []string
	DictionaryWords  int
	StrengthCounts   map[strength.Level]int
	Run              *classifier.RunResult
	SampleSize       int
}

// Build assembles a Summary from the individual analysis results. run may be
// nil when classification was not performed.
func Build(credentials []string, predictable []string, dictionaryWords int,
	run *classifier.RunResult, sampleSize int) *Summary {

	// Character count, not byte count: multi-byte runes count once.
	lengths := make([]int, len(credentials))
	for i, c := range credentials {
		lengths[i] = utf8.RuneCountInString(c)
	}

	return &Summary{
		TotalCredentials: len(credentials),
		Lengths:          ComputeLengthStats(lengths),
		RawLengths:       lengths,
		Predictable:      predictable,
		DictionaryWords:  dictionaryWords,
		StrengthCounts:   strength.Breakdown(credentials),
		Run:              run,
		SampleSize:       sampleSize,
	}
}

// sample returns at most s.SampleSize entries from list.
func (s *Summary) sample(list []string) []string {
	if len(list) <= s.SampleSize {
		return list
	}
	return list[:s.SampleSize]
}

// WriteFile writes the calculated values to a plain text results file.
func (s *Summary) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	fmt.Fprintf(w, "Credential Length Analysis:\n")
	fmt.Fprintf(w, "Mean length: %.2f\n", s.Lengths.Mean)
	fmt.Fprintf(w, "Median length: %.2f\n", s.Lengths.Median)
	fmt.Fprintf(w, "Mode length: %d (appears %d times)\n", s.Lengths.Mode, s.Lengths.ModeCount)
	fmt.Fprintf(w, "Standard deviation: %.2f\n", s.Lengths.StdDev)
	fmt.Fprintf(w, "Credentials >=%d characters: %d/%d\n",
		MinRecommendedLength, s.Lengths.AtLeastMin, s.Lengths.Total)
	fmt.Fprintf(w, "Number of outliers: %d\n", s.Lengths.Outliers)

	fmt.Fprintf(w, "\nPredictable credentials: %d\n", len(s.Predictable))
	for _, c := range s.sample(s.Predictable) {
		fmt.Fprintf(w, "%s\n", c)
	}

	if s.Run != nil {
		fmt.Fprintf(w, "\nCracked credentials: %d\n", s.Run.Result.Len())
		written := 0
		s.Run.Result.Each(func(credential, source string) {
			if written >= s.SampleSize {
				return
			}
			fmt.Fprintf(w, "%s (cracked using %s)\n", credential, source)
			written++
		})

		fmt.Fprintf(w, "\nCracking distribution by table:\n")
		s.Run.Result.BySource(func(source string, count int) {
			fmt.Fprintf(w, "%s: %d\n", source, count)
		})

		fmt.Fprintf(w, "\nSkipped during classification:\n")
		fmt.Fprintf(w, "Sources: %d\n", len(s.Run.Stats.SkippedSources))
		for _, name := range s.Run.Stats.SkippedSources {
			fmt.Fprintf(w, "  - %s\n", name)
		}
		fmt.Fprintf(w, "Credentials: %d\n", s.Run.Stats.SkippedCredentials)
		fmt.Fprintf(w, "Table lines: %d\n", s.Run.Stats.SkippedLines)
	}

	fmt.Fprintf(w, "\nCredential Strength Analysis:\n")
	for _, level := range strength.Levels {
		fmt.Fprintf(w, "%s: %d\n", level, s.StrengthCounts[level])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}
