// Package ntlm implements the legacy NT hash transform used as the lookup key
// for precomputed hash tables. The transform is a single unsalted round of MD4
// over the UTF-16LE encoding of the credential, rendered as uppercase hex.
package ntlm

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/crypto/md4"
)

// KeyLength is the length of a digest key in its canonical uppercase hex form.
const KeyLength = 32

// EncodingError indicates a credential that cannot be encoded for digesting.
// The credential is skipped; the error is never fatal to a classification run.
type EncodingError struct {
	Credential string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("credential %q cannot be encoded as UTF-16LE: invalid UTF-8 input", e.Credential)
}

// Digest computes the digest key for a credential. The result is deterministic:
// the same credential always yields the same key. Credentials that are not
// valid UTF-8 fail with *EncodingError.
func Digest(credential string) (string, error) {
	if !utf8.ValidString(credential) {
		return "", &EncodingError{Credential: credential}
	}

	encoded := encodeUTF16LE(credential)

	h := md4.New()
	h.Write(encoded)
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil))), nil
}

// ValidKey reports whether s is a well-formed digest key in canonical form:
// exactly KeyLength hexadecimal characters.
func ValidKey(s string) bool {
	if len(s) != KeyLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'F':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}

// Normalize converts a well-formed key to its canonical uppercase form.
func Normalize(s string) string {
	return strings.ToUpper(s)
}

// encodeUTF16LE encodes a string as UTF-16 little-endian bytes.
func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	return buf
}
