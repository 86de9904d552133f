package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/credaudit/internal/config"
	"github.com/dbsmedya/credaudit/internal/logger"
	"github.com/dbsmedya/credaudit/internal/ntlm"
)

func TestClassifyCommandStructure(t *testing.T) {
	assert.NotNil(t, classifyCmd)
	assert.Equal(t, "classify", classifyCmd.Use)
	assert.NotEmpty(t, classifyCmd.Short)
	assert.Contains(t, classifyCmd.Long, "Example:")
	assert.NotNil(t, classifyCmd.RunE)
}

func TestClassifyIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "classify" {
			found = true
			break
		}
	}
	assert.True(t, found, "classify command should be added to root command")
}

func TestClassifyCommandFlags(t *testing.T) {
	assert.NotNil(t, classifyCmd.Flags().Lookup("corpus"))
}

func TestResolveSourcesExplicitOrder(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tables.Directory = "tables"
	cfg.Tables.Order = []string{"z.hash", "a.hash"}

	sources, err := resolveSources(cfg)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "z.hash", sources[0].Name)
	assert.Equal(t, "a.hash", sources[1].Name)
}

func TestResolveSourcesLexical(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.hash", "a.hash"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(""), 0644))
	}

	cfg := config.DefaultConfig()
	cfg.Tables.Directory = dir
	cfg.Tables.Order = nil

	sources, err := resolveSources(cfg)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "a.hash", sources[0].Name)
	assert.Equal(t, "b.hash", sources[1].Name)
}

func newClassifyFixture(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	corpus := filepath.Join(dir, "combined_output.txt")
	require.NoError(t, os.WriteFile(corpus, []byte("password\nTr0ub4dor&3\n"), 0644))

	tables := filepath.Join(dir, "rainbow")
	require.NoError(t, os.Mkdir(tables, 0755))
	key, err := ntlm.Digest("password")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(tables, "t1.hash"), []byte(key+"\n"), 0644))

	cfg := config.DefaultConfig()
	cfg.Corpus.CombinedFile = corpus
	cfg.Tables.Directory = tables
	return cfg
}

func TestClassifyCorpusFile(t *testing.T) {
	cfg := newClassifyFixture(t)

	run, err := classifyCorpusFile(t.Context(), cfg, logger.NewDefault())
	require.NoError(t, err)

	require.Equal(t, 1, run.Result.Len())
	source, ok := run.Result.Source("password")
	require.True(t, ok)
	assert.Equal(t, "t1.hash", source)
}

func TestClassifyCorpusFileReleasesSignalRelay(t *testing.T) {
	cfg := newClassifyFixture(t)
	before := runtime.NumGoroutine()

	for i := 0; i < 5; i++ {
		_, err := classifyCorpusFile(t.Context(), cfg, logger.NewDefault())
		require.NoError(t, err)
	}

	// The relay goroutines exit once each run returns; give the scheduler a
	// moment to reap them.
	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before,
		"signal relay goroutines must not accumulate across runs")
}
