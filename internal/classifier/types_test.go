package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/credaudit/internal/logger"
	"github.com/dbsmedya/credaudit/internal/ntlm"
)

func TestNewCredentialSetCleans(t *testing.T) {
	set := NewCredentialSet([]string{"  password ", "password", "", "   ", "abc123"})

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("password"))
	assert.True(t, set.Contains("abc123"))
	assert.False(t, set.Contains(""))
	assert.False(t, set.Contains("  password "))
}

func TestCredentialSetSortedSnapshot(t *testing.T) {
	set := NewCredentialSet([]string{"charlie", "alpha", "bravo"})
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, set.Sorted())
}

func TestBuildDigestMap(t *testing.T) {
	set := NewCredentialSet([]string{"password", "bad\xffutf8"})
	m := BuildDigestMap(set, logger.NewDefault())

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.Skipped())

	key, ok := m.Key("password")
	require.True(t, ok)

	want, err := ntlm.Digest("password")
	require.NoError(t, err)
	assert.Equal(t, want, key)

	_, ok = m.Key("bad\xffutf8")
	assert.False(t, ok)
}
