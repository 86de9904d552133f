package report

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/credaudit/internal/strength"
)

// labelWidth is the display width of the left-hand label column.
const labelWidth = 28

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", runewidth.FillRight(label, labelWidth), value)
}

// Render writes a colored terminal summary.
func (s *Summary) Render(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", color.Bold.Sprint("=== Credential Audit Summary ==="))

	fmt.Fprintf(w, "\n%s\n", color.Cyan.Sprint("Corpus"))
	row(w, "Credentials", fmt.Sprintf("%d", s.TotalCredentials))
	row(w, "Dictionary words loaded", fmt.Sprintf("%d", s.DictionaryWords))

	fmt.Fprintf(w, "\n%s\n", color.Cyan.Sprint("Length distribution"))
	row(w, "Mean / median", fmt.Sprintf("%.2f / %.2f", s.Lengths.Mean, s.Lengths.Median))
	row(w, "Mode", fmt.Sprintf("%d (appears %d times)", s.Lengths.Mode, s.Lengths.ModeCount))
	row(w, "Standard deviation", fmt.Sprintf("%.2f", s.Lengths.StdDev))
	row(w, fmt.Sprintf(">=%d characters", MinRecommendedLength),
		fmt.Sprintf("%d/%d", s.Lengths.AtLeastMin, s.Lengths.Total))
	row(w, "Outliers", fmt.Sprintf("%d", s.Lengths.Outliers))

	fmt.Fprintf(w, "\n%s\n", color.Cyan.Sprint("Weakness signals"))
	row(w, "Predictable (dictionary)", color.Yellow.Sprintf("%d", len(s.Predictable)))
	if s.Run != nil {
		row(w, "Cracked (hash tables)", color.Red.Sprintf("%d", s.Run.Result.Len()))
		s.Run.Result.BySource(func(source string, count int) {
			row(w, "  "+source, fmt.Sprintf("%d", count))
		})
		if len(s.Run.Stats.SkippedSources) > 0 {
			row(w, "Skipped sources", fmt.Sprintf("%d", len(s.Run.Stats.SkippedSources)))
		}
		if s.Run.Stats.SkippedCredentials > 0 {
			row(w, "Skipped credentials", fmt.Sprintf("%d", s.Run.Stats.SkippedCredentials))
		}
		if s.Run.Stats.SkippedLines > 0 {
			row(w, "Skipped table lines", fmt.Sprintf("%d", s.Run.Stats.SkippedLines))
		}
	}

	fmt.Fprintf(w, "\n%s\n", color.Cyan.Sprint("Strength breakdown"))
	for _, level := range strength.Levels {
		count := s.StrengthCounts[level]
		var rendered string
		switch level {
		case strength.Weak:
			rendered = color.Red.Sprintf("%d", count)
		case strength.Medium:
			rendered = color.Yellow.Sprintf("%d", count)
		default:
			rendered = color.Green.Sprintf("%d", count)
		}
		row(w, level.String(), rendered)
	}
	fmt.Fprintln(w)
}
