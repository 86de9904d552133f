package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCommandStructure(t *testing.T) {
	assert.NotNil(t, analyzeCmd)
	assert.Equal(t, "analyze", analyzeCmd.Use)
	assert.NotEmpty(t, analyzeCmd.Short)
	assert.Contains(t, analyzeCmd.Long, "Example:")
	assert.NotNil(t, analyzeCmd.RunE)
}

func TestAnalyzeCommandFlags(t *testing.T) {
	assert.NotNil(t, analyzeCmd.Flags().Lookup("skip-tables"))
}

func TestAnalyzeCommandDocumentsSignals(t *testing.T) {
	doc := analyzeCmd.Long
	assert.Contains(t, doc, "Length distribution")
	assert.Contains(t, doc, "Dictionary")
	assert.Contains(t, doc, "hash tables")
	assert.Contains(t, doc, "strength")
}

func TestAnalyzeIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "analyze" {
			found = true
			break
		}
	}
	assert.True(t, found, "analyze command should be added to root command")
}
