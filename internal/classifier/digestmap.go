package classifier

import (
	"github.com/dbsmedya/credaudit/internal/logger"
	"github.com/dbsmedya/credaudit/internal/ntlm"
)

// DigestMap maps each credential to its digest key. It is computed once per
// run so that scanning N sources costs N membership passes, not N hashing
// passes. Read-only after construction.
type DigestMap struct {
	digests map[string]string
	skipped int
}

// BuildDigestMap computes the digest key for every credential in the set.
// Credentials that cannot be encoded are logged, counted and excluded; they
// never abort the run.
func BuildDigestMap(set *CredentialSet, log *logger.Logger) *DigestMap {
	digests := make(map[string]string, set.Len())
	skipped := 0

	for _, credential := range set.Sorted() {
		key, err := ntlm.Digest(credential)
		if err != nil {
			log.Warnw("Skipping credential that cannot be digested", "error", err)
			skipped++
			continue
		}
		digests[credential] = key
	}

	return &DigestMap{digests: digests, skipped: skipped}
}

// Key returns the digest key for a credential, if one was computed.
func (m *DigestMap) Key(credential string) (string, bool) {
	key, ok := m.digests[credential]
	return key, ok
}

// Len returns the number of credentials with a computed digest.
func (m *DigestMap) Len() int {
	return len(m.digests)
}

// Skipped returns the number of credentials excluded due to encoding failures.
func (m *DigestMap) Skipped() int {
	return m.skipped
}
