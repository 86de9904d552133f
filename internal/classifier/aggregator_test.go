package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatorFirstSourceWins(t *testing.T) {
	agg := NewAggregator()

	agg.Fold(&ScanResult{
		Source:  TableSource{Name: "a.hash"},
		Matches: []string{"abc123"},
	})
	agg.Fold(&ScanResult{
		Source:  TableSource{Name: "b.hash"},
		Matches: []string{"abc123"},
	})

	result := agg.Result()
	require.Equal(t, 1, result.Len())

	source, ok := result.Source("abc123")
	require.True(t, ok)
	assert.Equal(t, "a.hash", source, "first source in processing order must win")
}

func TestAggregatorUnmatchedCredentialAbsent(t *testing.T) {
	agg := NewAggregator()
	agg.Fold(&ScanResult{
		Source:  TableSource{Name: "t1.hash"},
		Matches: []string{"password"},
	})

	result := agg.Result()
	_, ok := result.Source("Tr0ub4dor&3")
	assert.False(t, ok)
}

func TestAggregatorEnumerationOrder(t *testing.T) {
	agg := NewAggregator()
	agg.Fold(&ScanResult{
		Source:  TableSource{Name: "b.hash"},
		Matches: []string{"mike", "zulu"},
	})
	agg.Fold(&ScanResult{
		Source:  TableSource{Name: "a.hash"},
		Matches: []string{"alpha", "zulu"},
	})

	var got []string
	agg.Result().Each(func(credential, source string) {
		got = append(got, credential+"="+source)
	})

	// Fold order (the fixed processing order), then lexical within a source.
	assert.Equal(t, []string{"mike=b.hash", "zulu=b.hash", "alpha=a.hash"}, got)
}

func TestAggregatorBySource(t *testing.T) {
	agg := NewAggregator()
	agg.Fold(&ScanResult{
		Source:  TableSource{Name: "a.hash"},
		Matches: []string{"one", "two"},
	})
	agg.Fold(&ScanResult{
		Source:  TableSource{Name: "b.hash"},
		Matches: []string{"two", "three"},
	})
	agg.Fold(&ScanResult{
		Source:  TableSource{Name: "c.hash"},
		Matches: []string{"two"},
	})

	counts := map[string]int{}
	var order []string
	agg.Result().BySource(func(source string, count int) {
		counts[source] = count
		order = append(order, source)
	})

	// "two" is claimed by a.hash; c.hash claims nothing and is omitted.
	assert.Equal(t, map[string]int{"a.hash": 2, "b.hash": 1}, counts)
	assert.Equal(t, []string{"a.hash", "b.hash"}, order)
}
