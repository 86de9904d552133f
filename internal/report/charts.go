package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/dbsmedya/credaudit/internal/strength"
)

// Chart file names within the report output directory.
const (
	LengthChartFile   = "credential_length_distribution.png"
	StrengthChartFile = "credential_strength_breakdown.png"
	CrackingChartFile = "cracking_difficulty_distribution.png"
)

// WriteCharts renders the length histogram, the strength breakdown bar chart
// and, when classification ran, the cracking distribution bar chart into dir.
func (s *Summary) WriteCharts(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := s.writeLengthChart(filepath.Join(dir, LengthChartFile)); err != nil {
		return err
	}
	if err := s.writeStrengthChart(filepath.Join(dir, StrengthChartFile)); err != nil {
		return err
	}
	if s.Run != nil && s.Run.Result.Len() > 0 {
		if err := s.writeCrackingChart(filepath.Join(dir, CrackingChartFile)); err != nil {
			return err
		}
	}
	return nil
}

// writeLengthChart renders a histogram of credential lengths, excluding IQR
// outliers for readability.
func (s *Summary) writeLengthChart(path string) error {
	var filtered plotter.Values
	for _, l := range s.RawLengths {
		v := float64(l)
		if v >= s.Lengths.LowerBound && v <= s.Lengths.UpperBound {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	p := plot.New()
	p.Title.Text = "Credential Length Distribution (Filtered)"
	p.X.Label.Text = "Credential Length"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(filtered, 20)
	if err != nil {
		return fmt.Errorf("failed to build length histogram: %w", err)
	}
	p.Add(hist)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save length histogram: %w", err)
	}
	return nil
}

func (s *Summary) writeStrengthChart(path string) error {
	values := make(plotter.Values, 0, len(strength.Levels))
	labels := make([]string, 0, len(strength.Levels))
	for _, level := range strength.Levels {
		values = append(values, float64(s.StrengthCounts[level]))
		labels = append(labels, level.String())
	}

	p := plot.New()
	p.Title.Text = "Credential Strength Breakdown"
	p.X.Label.Text = "Strength Level"
	p.Y.Label.Text = "Frequency"

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("failed to build strength chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save strength chart: %w", err)
	}
	return nil
}

func (s *Summary) writeCrackingChart(path string) error {
	var values plotter.Values
	var labels []string
	s.Run.Result.BySource(func(source string, count int) {
		values = append(values, float64(count))
		labels = append(labels, source)
	})

	p := plot.New()
	p.Title.Text = "Distribution of Cracking Difficulty by Table"
	p.X.Label.Text = "Hash Table"
	p.Y.Label.Text = "Credentials Cracked"

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("failed to build cracking chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save cracking chart: %w", err)
	}
	return nil
}
