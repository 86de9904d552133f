package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/credaudit/internal/classifier"
	"github.com/dbsmedya/credaudit/internal/strength"
)

func buildTestSummary(t *testing.T) *Summary {
	t.Helper()

	agg := classifier.NewAggregator()
	agg.Fold(&classifier.ScanResult{
		Source:  classifier.TableSource{Name: "t1.hash"},
		Matches: []string{"password"},
	})
	run := &classifier.RunResult{
		Result: agg.Result(),
		Stats: classifier.RunStats{
			SourcesScanned: 1,
			SkippedSources: []string{"missing.hash"},
		},
	}

	creds := []string{"password", "Tr0ub4dor&3", "abc123"}
	return Build(creds, []string{"password"}, 1000, run, 10)
}

func TestBuild(t *testing.T) {
	s := buildTestSummary(t)

	assert.Equal(t, 3, s.TotalCredentials)
	assert.Equal(t, 3, s.Lengths.Total)
	assert.Equal(t, []string{"password"}, s.Predictable)
	assert.Equal(t, 1, s.StrengthCounts[strength.Strong])
	assert.Equal(t, 1, s.Run.Result.Len())
}

func TestBuildCountsCharactersNotBytes(t *testing.T) {
	// "pässwörd" is 8 characters but 10 bytes.
	s := Build([]string{"pässwörd"}, nil, 0, nil, 10)

	assert.Equal(t, []int{8}, s.RawLengths)
	assert.Equal(t, 1, s.Lengths.AtLeastMin)
}

func TestWriteFile(t *testing.T) {
	s := buildTestSummary(t)
	path := filepath.Join(t.TempDir(), "credential_calculated_values.txt")

	require.NoError(t, s.WriteFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "Credential Length Analysis:")
	assert.Contains(t, text, "Predictable credentials: 1")
	assert.Contains(t, text, "Cracked credentials: 1")
	assert.Contains(t, text, "password (cracked using t1.hash)")
	assert.Contains(t, text, "missing.hash")
	assert.Contains(t, text, "Credential Strength Analysis:")
}

func TestWriteFileDeterministic(t *testing.T) {
	s := buildTestSummary(t)
	dir := t.TempDir()

	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, s.WriteFile(first))
	require.NoError(t, s.WriteFile(second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRender(t *testing.T) {
	s := buildTestSummary(t)

	var buf bytes.Buffer
	s.Render(&buf)

	out := buf.String()
	assert.Contains(t, out, "Credential Audit Summary")
	assert.Contains(t, out, "Strength breakdown")
	assert.Contains(t, out, "t1.hash")
}

func TestSummarySample(t *testing.T) {
	s := &Summary{SampleSize: 2}
	assert.Equal(t, []string{"a", "b"}, s.sample([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"a"}, s.sample([]string{"a"}))
}
